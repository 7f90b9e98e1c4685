// Package strenc reproduces the legacy strEnc routine of the CAS login page.
//
// The routine packs text into 64-bit blocks (four 16-bit characters each) and
// runs every block through a DES-family Feistel cipher once per key segment,
// key1 segments first, then key2, then key3. Output is uppercase hex, sixteen
// digits per block. Keys only ever encrypt; there is no decrypt direction.
//
// The key schedule uses the legacy script's PC-1 table, so results differ from
// crypto/des for most keys. Everything in the package is a pure function over
// read-only tables and safe for concurrent use.
package strenc
