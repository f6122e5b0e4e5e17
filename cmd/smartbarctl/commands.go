package main

import (
	"context"
	"fmt"
	"io"
	"maps"
	"slices"
	"strconv"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/JeffJagr/SmartBar-v3/internal/domain/entity"
	"github.com/JeffJagr/SmartBar-v3/internal/errors"
	"github.com/JeffJagr/SmartBar-v3/internal/usecase"
	"github.com/JeffJagr/SmartBar-v3/internal/util"

	"github.com/spf13/cobra"
)

func backfillCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "backfill",
		Short: "Hash every legacy plaintext PIN and remove the plaintext field",
		Long: "Scans all staffPins documents, writes pinHash for records that only carry a plaintext PIN " +
			"and deletes lingering pin fields. Safe to re-run.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withRuntime(cmd, func(ctx context.Context, rt *runtime) error {
				start := time.Now()

				result, err := rt.backfill().BackfillAll(ctx)
				if err != nil {
					return err
				}

				out := cmd.OutOrStdout()
				fmt.Fprintln(out, result.Message)
				fmt.Fprintf(out, "Updated: %d\nCleaned: %d\nElapsed: %s\n",
					result.UpdatedCount, result.CleanedCount, util.FormatDuration(time.Since(start)))

				return nil
			})
		},
	}
}

func dedupeStaffCmd() *cobra.Command {
	var input usecase.DedupeStaffInput

	cmd := &cobra.Command{
		Use:   "dedupe-staff",
		Short: "Collapse duplicate legacy staff user entries onto their staff ID",
		Long: "Merges role, display name and permissions of legacy per-login user entries into the canonical " +
			"staff entry. Prints the plan only unless --apply is given.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withRuntime(cmd, func(ctx context.Context, rt *runtime) error {
				result, err := rt.staffAdmin().DedupeStaff(ctx, &input)
				if err != nil {
					return err
				}

				printDedupeResult(cmd.OutOrStdout(), result)

				return nil
			})
		},
	}

	cmd.Flags().StringVar(&input.CompanyID, "company-id", "", "Company document ID")
	cmd.Flags().StringVar(&input.CompanyCode, "company-code", "", "Company code, resolved to the company ID")
	cmd.Flags().BoolVar(&input.Apply, "apply", false, "Commit the plan instead of printing it")
	cmd.MarkFlagsOneRequired("company-id", "company-code")

	return cmd
}

func seedStaffCmd() *cobra.Command {
	var (
		input       usecase.SeedStaffInput
		role        string
		permissions []string
	)

	cmd := &cobra.Command{
		Use:   "seed-staff",
		Short: "Create or update a staff credential with a hashed PIN",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			perms, err := permissionsFromFlags(permissions)
			if err != nil {
				return err
			}
			input.Role = entity.Role(strings.TrimSpace(role))
			input.Permissions = perms

			return withRuntime(cmd, func(ctx context.Context, rt *runtime) error {
				profile, err := rt.staffAdmin().SeedStaff(ctx, &input)
				if err != nil {
					return err
				}

				printProfile(cmd.OutOrStdout(), profile)

				return nil
			})
		},
	}

	cmd.Flags().StringVar(&input.StaffID, "staff-id", "", "Staff document ID")
	cmd.Flags().StringVar(&input.CompanyCode, "company-code", "", "Company code the PIN is scoped to")
	cmd.Flags().StringVar(&input.CompanyID, "company-id", "", "Company document ID")
	cmd.Flags().StringVar(&input.Pin, "pin", "", "Plaintext PIN, stored only as a hash")
	cmd.Flags().StringVar(&input.DisplayName, "display-name", "", "Display name")
	cmd.Flags().StringVar(&role, "role", "", "Role: staff or manager")
	cmd.Flags().StringSliceVar(&permissions, "permission", nil, "Permission to grant, as name or name=true|false (repeatable)")
	_ = cmd.MarkFlagRequired("staff-id")
	_ = cmd.MarkFlagRequired("company-code")
	_ = cmd.MarkFlagRequired("pin")

	return cmd
}

// permissionsFromFlags turns "name" and "name=bool" flag values into a permission map.
func permissionsFromFlags(values []string) (entity.Permissions, error) {
	perms := entity.Permissions{}
	for _, value := range values {
		name, raw, hasValue := strings.Cut(value, "=")
		name = strings.TrimSpace(name)
		if name == "" {
			return nil, errors.Errorf("invalid permission %q", value)
		}

		granted := true
		if hasValue {
			parsed, err := strconv.ParseBool(strings.TrimSpace(raw))
			if err != nil {
				return nil, errors.Wrapf(err, "invalid permission %q", value)
			}
			granted = parsed
		}
		perms[name] = granted
	}

	return perms, nil
}

func printDedupeResult(w io.Writer, result *usecase.DedupeStaffResult) {
	plan := result.Plan

	fmt.Fprintf(w, "Company:    %s\n", result.CompanyID)
	fmt.Fprintf(w, "Staff PINs: %d\n", result.Kept)
	fmt.Fprintf(w, "Updates:    %d\n", len(plan.Updates))
	fmt.Fprintf(w, "Duplicates: %d\n\n", len(plan.Duplicates))

	if len(plan.Updates) > 0 {
		tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
		fmt.Fprintln(tw, "STAFF ID\tROLE\tDISPLAY NAME\tPERMISSIONS")
		fmt.Fprintln(tw, "--------\t----\t------------\t-----------")
		for _, id := range slices.Sorted(maps.Keys(plan.Updates)) {
			patch := plan.Updates[id]
			fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", id, patch.Role, patch.DisplayName, grantedNames(patch.Permissions))
		}
		tw.Flush()
		fmt.Fprintln(w)
	}

	if len(plan.Duplicates) > 0 {
		tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
		fmt.Fprintln(tw, "DUPLICATE\tCANONICAL\tDISPLAY NAME\tROLE")
		fmt.Fprintln(tw, "---------\t---------\t------------\t----")
		for _, dup := range plan.Duplicates {
			fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", dup.ID, dup.CanonicalID, dup.DisplayName, dup.Role)
		}
		tw.Flush()
		fmt.Fprintln(w)
	}

	switch {
	case plan.IsEmpty():
		fmt.Fprintln(w, "Nothing to do.")
	case result.Applied:
		fmt.Fprintf(w, "Applied %d %s and removed %d %s.\n",
			len(plan.Updates), util.Plural(len(plan.Updates), "update", "updates"),
			len(plan.Duplicates), util.Plural(len(plan.Duplicates), "duplicate", "duplicates"))
	default:
		fmt.Fprintln(w, "Dry run. Re-run with --apply to commit.")
	}
}

func printProfile(w io.Writer, profile *entity.StaffProfile) {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Staff ID:\t%s\n", profile.StaffID)
	fmt.Fprintf(tw, "Company ID:\t%s\n", profile.CompanyID)
	fmt.Fprintf(tw, "Display Name:\t%s\n", profile.DisplayName)
	fmt.Fprintf(tw, "Role:\t%s\n", profile.Role)
	fmt.Fprintf(tw, "Permissions:\t%s\n", grantedNames(profile.Permissions))
	tw.Flush()
}

// grantedNames lists the permissions set to true, sorted.
func grantedNames(perms entity.Permissions) string {
	var names []string
	for name, value := range perms {
		if granted, ok := value.(bool); ok && granted {
			names = append(names, name)
		}
	}
	if len(names) == 0 {
		return "-"
	}
	slices.Sort(names)

	return strings.Join(names, ",")
}
