package main

import (
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/essinghigh-org/ts-radius/pkg/client"
	"github.com/essinghigh-org/ts-radius/pkg/log"
)

func main() {
	servers := flag.String("servers", "", "Comma-separated RADIUS server hosts in failover order")
	secret := flag.String("secret", "", "Shared secret")
	port := flag.Int("port", 1812, "UDP port for all servers")
	user := flag.String("user", "", "User name to authenticate")
	password := flag.String("password", "", "User password")
	timeout := flag.Duration("timeout", 5*time.Second, "Authentication timeout")
	attribute := flag.Uint("attribute", 25, "Assignment attribute id to extract")
	pattern := flag.String("pattern", "", "Optional regex; capture group 1 is the extracted value")
	level := flag.String("log-level", "info", "Log level (debug, info, warn, error)")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s -servers <host[,host...]> -secret <secret> -user <name> -password <password>\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  %s -servers 10.0.0.1,10.0.0.2 -secret testing123 -user alice -password secret\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s -servers 10.0.0.1 -secret testing123 -user alice -password secret -pattern 'group=(\\w+)'\n", os.Args[0])
	}

	flag.Parse()

	if *servers == "" || *secret == "" || *user == "" {
		fmt.Fprintf(os.Stderr, "Error: -servers, -secret and -user are required\n\n")
		flag.Usage()
		os.Exit(1)
	}

	hosts := strings.Split(*servers, ",")

	c, err := client.New(client.Config{
		Host:                  hosts[0],
		Hosts:                 hosts,
		Secret:                []byte(*secret),
		Port:                  *port,
		Timeout:               *timeout,
		HealthCheckUser:       *user,
		HealthCheckPassword:   *password,
		AssignmentAttributeID: uint8(*attribute),
		ValuePattern:          *pattern,
		Logger:                log.NewLoggerWithLevel(*level),
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer c.Shutdown()

	result, err := c.Authenticate(*user, *password)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if result.Ok {
		fmt.Println("Access-Accept")
		if result.Class != "" {
			fmt.Printf("Class: %s\n", result.Class)
		}
	} else {
		fmt.Printf("Failed: %s\n", result.Error)
	}

	for _, attr := range result.Attributes {
		fmt.Printf("  %s (%d) = %v\n", attr.Name, attr.ID, attr.Value)
	}

	if !result.Ok {
		os.Exit(2)
	}
}
