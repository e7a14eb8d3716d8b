// Command hash-generator prints bcrypt hashes for seeding users directly
// into the database, using the same hasher the API uses at registration.
//
// Usage:
//
//	hash-generator [-cost 12] password...
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/phrazzld/todolist-api/internal/domain"
	"github.com/phrazzld/todolist-api/internal/service/auth"
	"golang.org/x/crypto/bcrypt"
)

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("hash-generator", flag.ContinueOnError)
	fs.SetOutput(stderr)
	cost := fs.Int("cost", bcrypt.DefaultCost, "bcrypt cost factor")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() == 0 {
		return fmt.Errorf("at least one password is required")
	}
	if *cost < bcrypt.MinCost || *cost > bcrypt.MaxCost {
		return fmt.Errorf("cost must be between %d and %d", bcrypt.MinCost, bcrypt.MaxCost)
	}

	hasher := auth.NewBcryptHasher(*cost)
	for _, password := range fs.Args() {
		if len(password) < domain.MinPasswordLength {
			fmt.Fprintf(stderr, "warning: password shorter than %d characters would be rejected at registration\n",
				domain.MinPasswordLength)
		}
		hash, err := hasher.Hash(password)
		if err != nil {
			return err
		}
		fmt.Fprintf(stdout, "Password: %s\nHash: %s\n\n", password, hash)
	}
	return nil
}
