package main

import (
	"context"
	"fmt"
	"os"

	"github.com/dmitrijs2005/adminpanel/internal/admincli"
	"github.com/dmitrijs2005/adminpanel/internal/server/config"
)

func main() {

	ctx := context.Background()
	cfg := config.LoadConfig()

	if err := admincli.Execute(ctx, cfg); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

}
