// Package domain contains the chunk container model for pngsecret: chunk
// types, checksummed chunks and the signature-prefixed container that holds
// them.
//
// The domain is persistence-agnostic: it does not touch the filesystem, YAML
// or terminals. Infra/adapters read and write bytes and map into these types.
package domain
