// hashpw prints the bcrypt hash for the admin password so it can be
// pasted into adminAuth.passwordHash.
package main

import (
	"fmt"
	"os"

	"partnerdesk/pkg/utils"
)

func main() {
	if len(os.Args) != 2 {
		fmt.Fprintln(os.Stderr, "usage: hashpw <password>")
		os.Exit(2)
	}
	fmt.Println(utils.HashPassword(os.Args[1]))
}
