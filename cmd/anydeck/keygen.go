package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/anyproto/any-deck/util/crypto"
)

var (
	keygenWords      int
	keygenIndex      uint32
	keygenShowSecret bool
)

var keygenCmd = &cobra.Command{
	Use:   "keygen",
	Short: "Generate a mnemonic and print the account it derives",
	RunE: func(cmd *cobra.Command, args []string) error {
		mnemonic, err := crypto.NewMnemonic(keygenWords)
		if err != nil {
			return err
		}
		kp, err := mnemonic.DeriveKeypair(keygenIndex)
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "mnemonic: %s\n", mnemonic)
		fmt.Fprintf(out, "pubkey:   %s\n", kp.Pubkey)
		fmt.Fprintf(out, "hex:      %s\n", kp.Pubkey.Hex())
		if keygenShowSecret {
			secret, err := crypto.EncodeSecret(kp.SecretKey)
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "secret:   %s\n", secret)
		}
		return nil
	},
}

func init() {
	keygenCmd.Flags().IntVarP(&keygenWords, "words", "w", 12, "Mnemonic length, 12 or 24 words")
	keygenCmd.Flags().Uint32VarP(&keygenIndex, "index", "i", 0, "Derivation index of the account")
	keygenCmd.Flags().BoolVar(&keygenShowSecret, "show-secret", false, "Also print the encoded secret key")
}
