// Command resetpass computes the credential token for a user and prints
// the SQL needed to apply it, without touching the database itself.
//
// Usage:
//
//	resetpass <username> <serial> <password>
//
// CIPHER_KEY must be set (a .env file in the working directory is read).
package main

import (
	"fmt"
	"os"

	_ "github.com/joho/godotenv/autoload"

	"github.com/fiveserver/fiveweb/internal/auth"
)

func main() {
	if len(os.Args) != 4 {
		fmt.Fprintf(os.Stderr, "usage: %s <username> <serial> <password>\n", os.Args[0])
		os.Exit(2)
	}
	username, serial, password := os.Args[1], os.Args[2], os.Args[3]

	keyHex := os.Getenv("CIPHER_KEY")
	if keyHex == "" {
		fmt.Fprintln(os.Stderr, "CIPHER_KEY is not set")
		os.Exit(1)
	}
	hasher, err := auth.NewHasher(keyHex)
	if err != nil {
		fmt.Fprintf(os.Stderr, "bad cipher key: %v\n", err)
		os.Exit(1)
	}

	token := hasher.ComputeToken(serial, username, password)
	fmt.Printf("token: %s\n", token)
	fmt.Printf("UPDATE users SET hash = '%s' WHERE username = '%s';\n", token, username)
}
