// Command tafqeet writes Saudi riyal amounts in Arabic words.
package main

import "github.com/expensedesk/tafqeet/internal/cli"

func main() {
	cli.Execute()
}
