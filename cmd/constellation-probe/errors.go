package main

import "errors"

var (
	ErrReadPassword = errors.New("reading password from terminal")
	ErrNotATerminal = errors.New("stdin is not a terminal, cannot prompt for REMOTE_VM_PASSWORD")
)
