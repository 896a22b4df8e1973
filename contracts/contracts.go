// Package contracts embeds the compiled GooseBumpsNFT artifacts. The ABI and
// bytecode are Solidity compiler output checked in alongside the source.
package contracts

import _ "embed"

// GooseBumpsNFTABI is the JSON ABI of the deployed ERC-721 contract.
//
//go:embed GooseBumpsNFT.abi
var GooseBumpsNFTABI string

// GooseBumpsNFTBin is the hex-encoded deployment bytecode. Only the
// (currently disabled) deployment path reads it.
//
//go:embed GooseBumpsNFT.bin
var GooseBumpsNFTBin string
