// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package crypto implements the cookie envelope codec used by the relay.
//
// Two modes are supported and both must stay bit-compatible with records that
// were produced by existing browser clients:
//
//   - [Legacy]: an OpenSSL-compatible "Salted__" envelope. The derived key
//     string is used as a passphrase; salt, AES-256 key and IV are produced
//     with EVP_BytesToKey (MD5, one round).
//   - [FixedIVCBC]: AES-128-CBC with PKCS#7 padding, the derived key string as
//     raw key bytes and an all-zero IV. Output is deterministic.
//
// The key for both modes comes from [DeriveKey]. Every decryption failure is
// reported as an error wrapping [ErrDecryption]; the codec never panics on
// attacker-controlled input.
package crypto
