package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/lguibr/barbershop/shop"
	"github.com/lguibr/barbershop/utils"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run is main without the process exit, so it can be tested.
func run(args []string, stdout, stderr io.Writer) int {
	cfg, err := utils.LoadEnv(utils.DefaultConfig(), ".env")
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}

	cfg, err = utils.ParseArgs(cfg, args)
	if err != nil {
		switch {
		case errors.Is(err, utils.ErrTooManyCustomers):
			fmt.Fprintf(stderr, "The possible number of Customers is %d.\n", cfg.MaxCustomers)
		case errors.Is(err, utils.ErrUsage):
			fmt.Fprintln(stderr, utils.Usage)
		default:
			fmt.Fprintln(stderr, err)
			fmt.Fprintln(stderr, utils.Usage)
		}
		return 1
	}

	out := utils.NewConsoleSink(stdout)
	out.PrintLine("\nSleepingBarber\n")
	out.PrintLine("A solution to the sleeping barber problem using semaphores.")

	barbershop, err := shop.NewShop(cfg, utils.NewRandomDelay(cfg.Seed, cfg.TimeUnit), out)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}

	report, err := barbershop.Run(context.Background())
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}

	out.PrintLine("The barber served %d customers.", report.Served)
	return 0
}
