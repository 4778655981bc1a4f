// Command budgea queries the Budgea API and mirrors linked users into Postgres.
package main

import "os"

func main() {
	os.Exit(Execute(&Writer{Out: os.Stdout, Err: os.Stderr}))
}
