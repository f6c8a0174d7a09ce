package main

import (
	"os"

	"github.com/bhairavmehta/MathTeacherAgent/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
