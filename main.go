/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package main

import "github.com/jj05y/MTT/cmd"

func main() {
	cmd.Execute()
}
