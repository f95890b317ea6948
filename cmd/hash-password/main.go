// Command hash-password prints a bcrypt hash suitable for ADMIN_PASS_HASH.
//
//	hash-password 's3cret'
//	echo -n 's3cret' | hash-password
package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

func main() {
	password, err := readPassword()
	if err != nil {
		slog.Error("reading password", "err", err)
		os.Exit(1)
	}
	if password == "" {
		fmt.Fprintln(os.Stderr, "usage: hash-password <password> (or pipe it on stdin)")
		os.Exit(2)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		slog.Error("failed to hash password", "err", err)
		os.Exit(1)
	}
	fmt.Println(string(hashed))
}

func readPassword() (string, error) {
	if len(os.Args) > 1 {
		return os.Args[1], nil
	}
	line, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}
