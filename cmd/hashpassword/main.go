package main

import (
	"bufio"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"holidayplanner/pkg/utils"
)

// Reads a password from stdin and prints the bcrypt hash to put in AUTH_PASSWORD.
func main() {
	if err := run(os.Stdin, os.Stdout); err != nil {
		log.Printf("Hashing failed: %v", err)
		os.Exit(1)
	}
}

func run(in io.Reader, out io.Writer) error {
	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && err != io.EOF {
		return fmt.Errorf("read password: %w", err)
	}
	password := strings.TrimRight(line, "\r\n")
	if password == "" {
		return fmt.Errorf("%w: password is empty", utils.ErrInvalidInput)
	}

	hash, err := utils.HashPassword(password)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(out, hash)
	return err
}
