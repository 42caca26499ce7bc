package main

// @title Coffee Scout API
// @version 1.0
// @description Recommends nearby cafés for a mood, the time of day and the current weather.
// @contact.name API Support
// @contact.email support@example.com
// @host localhost:8080
// @BasePath /
