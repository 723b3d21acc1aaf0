package main

type RefreshMsg struct{}

type ErrorMsg struct {
	err error
}
