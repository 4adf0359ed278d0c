package main

import (
	_ "embed"
	"fmt"
)

//go:embed help/general.txt
var helpGeneral string

//go:embed help/configure.txt
var helpConfigure string

//go:embed help/print.txt
var helpPrint string

//go:embed help/unknown.txt
var helpUnknown string

//go:embed README.md
var readmeContent string

// - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - -
func showHelp(command string) {
	switch command {
	case "":
		fmt.Print(helpGeneral)
	case "configure":
		fmt.Print(helpConfigure)
	case "print":
		fmt.Print(helpPrint)
	case "docs", "help":
		fmt.Print(helpGeneral)
	default:
		fmt.Printf(helpUnknown, command)
	}
}
