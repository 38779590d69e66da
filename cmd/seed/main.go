package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"saporis/internal/utils"

	"github.com/joho/godotenv"
)

func init() {
	// Load .env file from project root
	if err := godotenv.Load(); err != nil {
		// Try loading from parent directory (in case running from cmd/seed/)
		if err := godotenv.Load("../../.env"); err != nil {
			log.Printf("Warning: No .env file found: %v", err)
		}
	}
}

func main() {
	seedCmd := flag.NewFlagSet("seed", flag.ExitOnError)
	numUsers := seedCmd.Int("users", utils.DefaultNumUsers, "Number of dummy users to create")
	withConsumption := seedCmd.Bool("consumption", true, "Seed a week of consumption records per user")

	if len(os.Args) < 2 {
		printHelp()
		os.Exit(1)
	}

	switch os.Args[1] {
	case "seed":
		seedCmd.Parse(os.Args[2:])

		log.Printf("Starting user seeder with %d users", *numUsers)
		if err := utils.SeedUsers(*numUsers, *withConsumption); err != nil {
			log.Fatalf("Error seeding users: %v", err)
		}

	case "cleanup":
		log.Println("Deleting test users and their records")
		if err := utils.CleanupTestUsers(); err != nil {
			log.Fatalf("Error cleaning up test users: %v", err)
		}

	case "count":
		count, err := utils.GetUserCount()
		if err != nil {
			log.Fatalf("Error counting users: %v", err)
		}
		log.Printf("Total users: %d", count)

	case "help":
		printHelp()

	default:
		fmt.Printf("Unknown subcommand: %s\n", os.Args[1])
		printHelp()
		os.Exit(1)
	}
}

func printHelp() {
	fmt.Println("Database utility tool for Saporis")
	fmt.Println("\nUsage:")
	fmt.Println("  db-tool COMMAND [OPTIONS]")
	fmt.Println("\nCommands:")
	fmt.Println("  seed         Create dummy users for testing")
	fmt.Println("               Options:")
	fmt.Println("                 --users=N           Number of dummy users to create (default: 100)")
	fmt.Println("                 --consumption=BOOL  Seed a week of consumption per user (default: true)")
	fmt.Println("")
	fmt.Println("  cleanup      Delete test users and their consumption/chat records")
	fmt.Println("")
	fmt.Println("  count        Show the total user count")
	fmt.Println("")
	fmt.Println("  help         Show this help message")
	fmt.Println("")
	fmt.Println("Environment variables:")
	fmt.Println("  DB_HOST      Database host (default: localhost)")
	fmt.Println("  DB_PORT      Database port (default: 5432)")
	fmt.Println("  DB_USER      Database user (default: postgres)")
	fmt.Println("  DB_PASSWORD  Database password (default: postgres)")
	fmt.Println("  DB_NAME      Database name (default: saporis)")
	fmt.Println("  DB_SSLMODE   Database SSL mode (default: disable)")
}
