package main

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/okian/careerlens/internal/domain/types"
)

var errValidationFailed = errors.New("validation failed")

func newValidateCmd() *cobra.Command {
	var in fileFlags
	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Check a record file field by field",
		Long: `Validate one education or experience list and print the field errors.

Exits non-zero when any field is invalid.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			v, raws, err := in.load()
			if err != nil {
				return err
			}
			_, svc, err := setup(ctx, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			defer svc.Stop()

			errs, err := svc.Validate(ctx, string(v.Domain), raws)
			if err != nil {
				return err
			}

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			if len(errs) == 0 {
				return enc.Encode(types.MessageResponse{Message: "Validation passed"})
			}
			if err := enc.Encode(types.ValidationErrorResponse{Error: "Validation failed", Errors: errs}); err != nil {
				return err
			}
			return fmt.Errorf("%w: %d error(s)", errValidationFailed, errs.Count())
		},
	}
	in.register(cmd)
	return cmd
}
