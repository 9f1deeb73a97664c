package main

import (
	"encoding/json"
	"flag"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/cookie-relay/internal/config"
	"github.com/MKhiriev/cookie-relay/internal/crypto"
	"github.com/MKhiriev/cookie-relay/internal/service"
	"github.com/MKhiriev/cookie-relay/models"
)

// connectFunc builds the relay service from the parsed global flags.
type connectFunc func(flags *config.FlagValues) (service.ClientRelayService, error)

// newRootCmd wires the client commands. Global configuration flags
// (--server-url, --request-timeout, --log-level, -c) are declared by the
// config package and parsed here, before connect runs.
func newRootCmd(buildInfo models.AppBuildInfo, connect connectFunc) *cobra.Command {
	var relay service.ClientRelayService

	globalFlags := flag.NewFlagSet("client", flag.ContinueOnError)
	flags := config.BindFlags(globalFlags)

	root := &cobra.Command{
		Use:           "client",
		Short:         "Store and fetch encrypted records on a cookie relay",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			relay, err = connect(flags)
			if err != nil {
				return fmt.Errorf("connect to relay: %w", err)
			}
			return nil
		},
	}
	root.PersistentFlags().AddGoFlagSet(globalFlags)

	current := func() service.ClientRelayService { return relay }

	root.AddCommand(
		pushCmd(current),
		pullCmd(current),
		pullLocalCmd(current),
		healthCmd(current),
		versionCmd(current, buildInfo),
	)

	return root
}

// push: encrypt a payload locally and store it on the relay.
func pushCmd(relay func() service.ClientRelayService) *cobra.Command {
	var req models.PushRequest
	var payload string

	cmd := &cobra.Command{
		Use:   "push",
		Short: "Encrypt a JSON payload locally and store it on the relay",
		Example: `  client push --uuid abc123 --password secret --payload '{"session":"xyz"}'
  client push --mode aes-128-cbc-fixed --password secret --payload '{"n":1}'`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			req.Payload = json.RawMessage(payload)

			stored, err := relay().Push(cmd.Context(), req)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), stored)
			return nil
		},
	}

	cmd.Flags().StringVar(&req.UUID, "uuid", "", "record identifier, generated when empty")
	cmd.Flags().StringVar(&req.Password, "password", "", "password used to derive the key")
	cmd.Flags().StringVar(&req.CryptoType, "mode", crypto.LegacyTag, "cipher mode: legacy or aes-128-cbc-fixed")
	cmd.Flags().StringVar(&payload, "payload", "", "JSON payload to encrypt (required)")
	_ = cmd.MarkFlagRequired("payload")

	return cmd
}

// pull: fetch a record, decrypted by the relay when a password is set.
func pullCmd(relay func() service.ClientRelayService) *cobra.Command {
	var req models.GetRequest

	cmd := &cobra.Command{
		Use:   "pull",
		Short: "Fetch a record, decrypted by the relay when --password is set",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := relay().Pull(cmd.Context(), req)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), string(result))
			return nil
		},
	}
	bindGetFlags(cmd, &req)

	return cmd
}

// pull-local: fetch the raw record and decrypt it on this machine.
func pullLocalCmd(relay func() service.ClientRelayService) *cobra.Command {
	var req models.GetRequest

	cmd := &cobra.Command{
		Use:   "pull-local",
		Short: "Fetch the raw record and decrypt it locally",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := relay().PullLocal(cmd.Context(), req)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), string(result))
			return nil
		},
	}
	bindGetFlags(cmd, &req)

	return cmd
}

func bindGetFlags(cmd *cobra.Command, req *models.GetRequest) {
	cmd.Flags().StringVar(&req.UUID, "uuid", "", "record identifier (required)")
	cmd.Flags().StringVar(&req.Password, "password", "", "password used to derive the key")
	cmd.Flags().StringVar(&req.CryptoTypeOverride, "mode", "", "override the stored cipher mode")
	_ = cmd.MarkFlagRequired("uuid")
}

func healthCmd(relay func() service.ClientRelayService) *cobra.Command {
	return &cobra.Command{
		Use:   "health",
		Short: "Call the relay health endpoint",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			health, err := relay().Health(cmd.Context())
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", health.Status, health.Timestamp)
			return nil
		},
	}
}

func versionCmd(relay func() service.ClientRelayService, buildInfo models.AppBuildInfo) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the client build and the relay version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			version, err := relay().Version(cmd.Context())
			if err != nil {
				return err
			}

			fmt.Fprint(cmd.OutOrStdout(), buildInfo.String())
			fmt.Fprintf(cmd.OutOrStdout(), "Relay version: %s\n", version)
			return nil
		},
	}
}
