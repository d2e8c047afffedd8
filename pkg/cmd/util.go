package cmd

import (
	"fmt"
	"math/big"
	"os"
	"path"
	"strconv"
	"strings"

	"github.com/consensys/go-imp/pkg/binfile"
	"github.com/consensys/go-imp/pkg/imp"
	"github.com/spf13/cobra"
)

// Get an expected flag, or panic if an error arises.
func getFlag(cmd *cobra.Command, flag string) bool {
	r, err := cmd.Flags().GetBool(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	return r
}

// Get an expected unsigned integer flag, or panic if an error arises.
func getUint(cmd *cobra.Command, flag string) uint {
	r, err := cmd.Flags().GetUint(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	return r
}

// Get an expected signed integer flag, or panic if an error arises.
func getInt64(cmd *cobra.Command, flag string) int64 {
	r, err := cmd.Flags().GetInt64(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	return r
}

// Get an expected string-array flag, or panic if an error arises.
func getStringArray(cmd *cobra.Command, flag string) []string {
	r, err := cmd.Flags().GetStringArray(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	return r
}

// Parse a program file using a decoder based on the extension of the filename.
func readProgramFile(filename string) imp.Com {
	var program imp.Com
	// Read program file
	bytes, err := os.ReadFile(filename)
	// Handle errors
	if err == nil {
		// Check file extension
		ext := path.Ext(filename)
		//
		switch ext {
		case ".json":
			program, err = binfile.ProgramFromJson(bytes)
			if err == nil {
				return program
			}
		case ".yaml", ".yml":
			program, err = binfile.ProgramFromYaml(bytes)
			if err == nil {
				return program
			}
		default:
			err = fmt.Errorf("unknown program file format: %s", ext)
		}
	}
	// Handle error
	fmt.Println(err)
	os.Exit(2)
	// unreachable
	return nil
}

// Parse zero or more "index=value" bindings into an initial store with a given
// default value.
func buildStore(defaultValue int64, bindings []string) imp.Store {
	store := imp.NewStore(big.NewInt(defaultValue))
	//
	for _, binding := range bindings {
		parts := strings.SplitN(binding, "=", 2)
		if len(parts) != 2 {
			fmt.Printf("malformed binding %q (expected index=value)\n", binding)
			os.Exit(2)
		}
		//
		index, err1 := strconv.ParseUint(parts[0], 10, 64)
		value, ok := new(big.Int).SetString(parts[1], 10)
		//
		if err1 != nil || !ok {
			fmt.Printf("malformed binding %q (expected index=value)\n", binding)
			os.Exit(2)
		}
		//
		store = store.Update(uint(index), value)
	}
	//
	return store
}
