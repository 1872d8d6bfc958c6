package main

import "github.com/provision-iam/aws-inspector/cmd"

func main() {
	cmd.Execute()
}
