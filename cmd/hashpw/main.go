package main

import (
	"fmt"
	"log"
	"os"

	"teamraw-backend/internal/auth"
)

// hashpw generates a bcrypt hash for the static admin table. Admins are
// provisioned by pasting the output into auth.DefaultAdmins (or a fork of
// it); there is no registration endpoint on the server.
func main() {
	if len(os.Args) != 2 {
		fmt.Fprintf(os.Stderr, "Usage: %s <password>\n", os.Args[0])
		os.Exit(1)
	}

	hash, err := auth.HashPassword(os.Args[1])
	if err != nil {
		log.Fatalf("Failed to hash password: %v", err)
	}

	fmt.Println(hash)
}
