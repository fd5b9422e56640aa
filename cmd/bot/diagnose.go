package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/KirkDiggler/waterstone/internal/services/diagnostics"
	"github.com/spf13/cobra"
)

var errUnhealthy = errors.New("one or more checks failed")

func newDiagnoseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "diagnose",
		Short: "Check the record store and Redis without connecting to Discord",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}

			records, err := newRecordStore(cfg)
			if err != nil {
				return err
			}

			checks := []diagnostics.Check{diagnostics.RecordStoreCheck(records)}

			redisClient, redisErr := connectRedis(ctx, cfg)
			if redisErr != nil {
				log.Warningf("%v", redisErr)
				checks = append(checks, diagnostics.Check{
					Name: diagnostics.CheckRedis,
					Run:  func(context.Context) error { return redisErr },
				})
			} else {
				defer redisClient.Close()
				checks = append(checks, diagnostics.RedisCheck(redisClient))
			}

			svc, err := diagnostics.New(&diagnostics.Config{Checks: checks})
			if err != nil {
				return err
			}

			output, err := svc.Run(ctx, &diagnostics.RunInput{})
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, result := range output.Results {
				status := "PASS"
				if !result.Passed {
					status = "FAIL"
				}
				fmt.Fprintf(out, "%-22s %s %s", result.Name, status, result.Duration)
				if result.Error != "" {
					fmt.Fprintf(out, "  %s", result.Error)
				}
				fmt.Fprintln(out)
			}

			if !output.Healthy {
				return errUnhealthy
			}
			return nil
		},
	}
}
