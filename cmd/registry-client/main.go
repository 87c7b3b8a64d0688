package main

import (
	"encoding/json"
	"fmt"
	"log"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/zkrlabs/proof-registry-backend/api"
	"github.com/zkrlabs/proof-registry-backend/api/clients"
	"github.com/zkrlabs/proof-registry-backend/cmd/flags"
	"github.com/zkrlabs/proof-registry-backend/interfaces"
)

var proofAFlag = &cli.Uint64SliceFlag{
	Name:     "a",
	Required: true,
	Usage:    "proof component a, exactly 2 values",
}

var proofBFlag = &cli.Uint64SliceFlag{
	Name:     "b",
	Required: true,
	Usage:    "proof component b, exactly 4 values row-major",
}

var proofCFlag = &cli.Uint64SliceFlag{
	Name:     "c",
	Required: true,
	Usage:    "proof component c, exactly 2 values",
}

var proofInputsFlag = &cli.Uint64SliceFlag{
	Name:  "inputs",
	Usage: "public inputs, may be omitted",
}

var proofIDFlag = &cli.StringFlag{
	Name:     "proof-id",
	Required: true,
	Usage:    "proof identifier. 64-char hex string, 0x prefix optional",
}

var addressFlag = &cli.StringFlag{
	Name:     "address",
	Required: true,
	Usage:    "account address. 40-char hex string, 0x prefix optional",
}

var nameFlag = &cli.StringFlag{
	Name:     "name",
	Required: true,
	Usage:    "verifier display name",
}

var afterFlag = &cli.Uint64Flag{
	Name:  "after",
	Value: 0,
	Usage: "return events with sequence numbers greater than this",
}

func main() {
	app := &cli.App{
		Name:  "registry-client",
		Usage: "Interact with the proof registry API",
		Flags: []cli.Flag{
			flags.ServerAddrFlag,
			flags.CallerFlag,
		},
		Commands: []*cli.Command{
			{
				Name:  "submit",
				Usage: "Submit a proof and print its assigned ID",
				Flags: []cli.Flag{proofAFlag, proofBFlag, proofCFlag, proofInputsFlag},
				Action: func(cCtx *cli.Context) error {
					client, err := newClient(cCtx)
					if err != nil {
						return err
					}

					b := cCtx.Uint64Slice(proofBFlag.Name)
					if len(b) != 4 {
						return fmt.Errorf("component b requires exactly 4 values, got %d", len(b))
					}

					resp, err := client.SubmitProof(&api.SubmitProofRequest{
						A:      cCtx.Uint64Slice(proofAFlag.Name),
						B:      [][]uint64{b[:2], b[2:]},
						C:      cCtx.Uint64Slice(proofCFlag.Name),
						Inputs: cCtx.Uint64Slice(proofInputsFlag.Name),
					})
					if err != nil {
						return err
					}
					return printJSON(resp)
				},
			},
			{
				Name:  "verify",
				Usage: "Run verification for a pending proof as the caller",
				Flags: []cli.Flag{proofIDFlag},
				Action: func(cCtx *cli.Context) error {
					client, err := newClient(cCtx)
					if err != nil {
						return err
					}

					proofID, err := interfaces.NewProofIDFromHex(cCtx.String(proofIDFlag.Name))
					if err != nil {
						return err
					}

					resp, err := client.VerifyProof(proofID)
					if err != nil {
						return err
					}
					return printJSON(resp)
				},
			},
			{
				Name:  "get",
				Usage: "Fetch a proof record",
				Flags: []cli.Flag{proofIDFlag},
				Action: func(cCtx *cli.Context) error {
					client, err := newClient(cCtx)
					if err != nil {
						return err
					}

					proofID, err := interfaces.NewProofIDFromHex(cCtx.String(proofIDFlag.Name))
					if err != nil {
						return err
					}

					resp, err := client.GetProof(proofID)
					if err != nil {
						return err
					}
					return printJSON(resp)
				},
			},
			{
				Name:  "account-proofs",
				Usage: "List proof IDs submitted by an account",
				Flags: []cli.Flag{addressFlag},
				Action: func(cCtx *cli.Context) error {
					client, err := newClient(cCtx)
					if err != nil {
						return err
					}

					account, err := interfaces.NewAddressFromHex(cCtx.String(addressFlag.Name))
					if err != nil {
						return err
					}

					resp, err := client.AccountProofs(account)
					if err != nil {
						return err
					}
					return printJSON(resp)
				},
			},
			{
				Name:  "register-verifier",
				Usage: "Register a verifier (owner only)",
				Flags: []cli.Flag{addressFlag, nameFlag},
				Action: func(cCtx *cli.Context) error {
					client, err := newClient(cCtx)
					if err != nil {
						return err
					}

					address, err := interfaces.NewAddressFromHex(cCtx.String(addressFlag.Name))
					if err != nil {
						return err
					}

					resp, err := client.RegisterVerifier(&api.RegisterVerifierRequest{
						Address: address,
						Name:    cCtx.String(nameFlag.Name),
					})
					if err != nil {
						return err
					}
					return printJSON(resp)
				},
			},
			{
				Name:  "toggle-verifier",
				Usage: "Flip a verifier's active flag (owner only)",
				Flags: []cli.Flag{addressFlag},
				Action: func(cCtx *cli.Context) error {
					client, err := newClient(cCtx)
					if err != nil {
						return err
					}

					address, err := interfaces.NewAddressFromHex(cCtx.String(addressFlag.Name))
					if err != nil {
						return err
					}

					resp, err := client.ToggleVerifier(address)
					if err != nil {
						return err
					}
					return printJSON(resp)
				},
			},
			{
				Name:  "stats",
				Usage: "Print registry counters and the owner address",
				Action: func(cCtx *cli.Context) error {
					client, err := newClient(cCtx)
					if err != nil {
						return err
					}

					resp, err := client.Stats()
					if err != nil {
						return err
					}
					return printJSON(resp)
				},
			},
			{
				Name:  "events",
				Usage: "Page through the registry event log",
				Flags: []cli.Flag{afterFlag},
				Action: func(cCtx *cli.Context) error {
					client, err := newClient(cCtx)
					if err != nil {
						return err
					}

					resp, err := client.Events(cCtx.Uint64(afterFlag.Name))
					if err != nil {
						return err
					}
					return printJSON(resp)
				},
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func newClient(cCtx *cli.Context) (*clients.RegistryClient, error) {
	client := &clients.RegistryClient{
		ServerAddr: cCtx.String(flags.ServerAddrFlag.Name),
	}

	if raw := cCtx.String(flags.CallerFlag.Name); raw != "" {
		caller, err := interfaces.NewAddressFromHex(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid caller address: %w", err)
		}
		client.Caller = caller
	}

	return client, nil
}

func printJSON(v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(data))
	return nil
}
