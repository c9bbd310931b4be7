// Command hash-generator produces a bcrypt hash for the given password,
// for seeding rows in the admins table by hand.
//
// Usage:
//
//	hash-generator <password>
package main

import (
	"fmt"
	"os"

	"github.com/feastboard/admin-api/internal/service/auth"
)

func main() {
	if len(os.Args) != 2 {
		fmt.Fprintln(os.Stderr, "usage: hash-generator <password>")
		os.Exit(2)
	}

	hash, err := auth.HashPassword(os.Args[1])
	if err != nil {
		fmt.Fprintf(os.Stderr, "error generating hash: %v\n", err)
		os.Exit(1)
	}

	fmt.Println(hash)
}
