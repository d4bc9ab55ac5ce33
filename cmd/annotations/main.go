// Command annotations analyzes an image annotation corpus: it lists the
// categories present, finds the images that show a category, reports the
// most frequent categories and ranks the words used in captions.
//
// Usage:
//
//	go run ./cmd/annotations --annotations annots.json --categories cats.txt menu
//	go run ./cmd/annotations --config configs/example.yaml words -n 5
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/Adithya-Monish-Kumar-K/image-annotation-analytics/internal/cli"
	apperrors "github.com/Adithya-Monish-Kumar-K/image-annotation-analytics/pkg/errors"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := cli.Execute(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		stop()
		os.Exit(apperrors.ExitCode(err))
	}
}
