// Copyright (C) 2024 Creditor Corp. Group.
// See LICENSE for copying information.

package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/BoostyLabs/ordtransfer/bitcoin/txbuilder"
	"github.com/BoostyLabs/ordtransfer/internal/logger"
	"github.com/BoostyLabs/ordtransfer/manifest"
)

// blankManifestPath defines file written by blank command.
const blankManifestPath = "manifest.json"

var blankCmd = &cobra.Command{
	Use:   "blank",
	Short: "Write manifest template to " + blankManifestPath,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if _, err := loadSettings(settingsPath); err != nil {
			return err
		}

		if err := manifest.Blank().ToJSONFile(blankManifestPath); err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Wrote default manifest to %s\n", blankManifestPath)
		return nil
	},
}

var makeTxCmd = &cobra.Command{
	Use:   "make-tx <manifest>",
	Short: "Build unsigned transfer PSBT and write it base64 encoded next to the manifest",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, m, err := prepare(args[0])
		if err != nil {
			return err
		}

		source, release, err := a.chainSource()
		if err != nil {
			return err
		}
		defer release()

		packet, err := a.builder.CreatePSBT(cmd.Context(), m, a.resolver, source)
		if err != nil {
			return err
		}

		encoded, err := txbuilder.EncodePSBT(packet)
		if err != nil {
			return err
		}

		psbtPath := psbtPathFor(args[0])
		if err = os.WriteFile(psbtPath, []byte(encoded), 0o644); err != nil {
			return err
		}

		logger.Module("cli").WithField("txid", packet.UnsignedTx.TxHash().String()).Infof("wrote psbt to %s", psbtPath)
		fmt.Fprintf(cmd.OutOrStdout(), "Wrote psbt to %s\n", psbtPath)
		fmt.Fprintln(cmd.OutOrStdout(), packet.UnsignedTx.TxHash().String())
		return nil
	},
}

var estimateFeeCmd = &cobra.Command{
	Use:   "estimate-fee <manifest>",
	Short: "Print fee in satoshi the signed transfer transaction needs",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, m, err := prepare(args[0])
		if err != nil {
			return err
		}

		fee, err := a.builder.EstimateFee(cmd.Context(), m, a.resolver, a.templates, a.wallet)
		if err != nil {
			return err
		}

		fmt.Fprintln(cmd.OutOrStdout(), int64(fee))
		return nil
	},
}

var txIDCmd = &cobra.Command{
	Use:   "txid <manifest>",
	Short: "Print id of the unsigned transfer transaction",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, m, err := prepare(args[0])
		if err != nil {
			return err
		}

		tx, err := a.builder.BuildTransferTx(cmd.Context(), m, a.resolver)
		if err != nil {
			return err
		}

		fmt.Fprintln(cmd.OutOrStdout(), tx.TxHash().String())
		return nil
	},
}

// prepare wires components and reads manifest file.
func prepare(manifestPath string) (*app, *manifest.Manifest, error) {
	a, err := newApp(settingsPath)
	if err != nil {
		return nil, nil, err
	}

	m, err := manifest.FromJSONFile(manifestPath)
	if err != nil {
		return nil, nil, err
	}

	return a, m, nil
}

// psbtPathFor returns PSBT file path for manifest file path.
func psbtPathFor(manifestPath string) string {
	return strings.TrimSuffix(manifestPath, ".json") + ".psbt"
}
