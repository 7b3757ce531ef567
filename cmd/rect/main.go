// Command rect prints the attributes of a rectangle, one per line, in iteration order.
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/urfave/cli"

	"go.llib.dev/rect"
)

func main() {
	app := cli.NewApp()
	app.Name = "rect"
	app.Usage = "print the attributes of a rectangle as labeled mappings"
	app.Action = func(*cli.Context) error {
		r := rect.New(10, 5)
		for attr := range r.Attributes() {
			if _, err := fmt.Println(attr); err != nil {
				return err
			}
		}
		return nil
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
