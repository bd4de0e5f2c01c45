package server

//go:generate swag init -g internal/server/server.go -o docs

// @title sokudo API
// @version 0.1
// @description Runs a page-speed audit for a URL and returns a simplified score/issue report.
// @contact.name sokudo Maintainers
// @contact.url https://github.com/raysh454/sokudo
// @BasePath /
