package dotenv

import (
	"flag"
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

// Load reads .env into the process environment. The -port flag, when given,
// wins over the PORT variable from the file.
func Load() error {
	if err := godotenv.Load(); err != nil {
		return err
	}

	portFlag := flag.String("port", "", "Server port (overrides PORT environment variable)")
	flag.Parse()

	if *portFlag != "" {
		if err := os.Setenv("PORT", *portFlag); err != nil {
			return fmt.Errorf("failed to set PORT environment variable: %w", err)
		}
	}
	return nil
}
