package main

import "github.com/fieldscope/research-api/cmd"

// @title           FieldScope Research API
// @version         1.0.0
// @description     Research project management API with respondent identity and ordering consistency
// @contact.name    API Support
// @contact.url     https://github.com/fieldscope/research-api
// @license.name    MIT
// @license.url     https://opensource.org/licenses/MIT
// @host            localhost:8080
// @BasePath        /
// @schemes         http https
func main() {
	cmd.Execute()
}
