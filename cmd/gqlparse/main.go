package main

import (
	"github.com/elbow-jason/graphql-parser/cmd"
)

func main() {
	cmd.Execute()
}
