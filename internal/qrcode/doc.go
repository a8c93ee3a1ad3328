// Package qrcode implements the ISO/IEC 18004 QR Code and Micro QR Code
// symbol encoder: segment planning, bit-stream assembly, Reed–Solomon error
// correction and the masked module matrix. It never touches a filesystem or
// a network socket — callers hand it validated segments and get back a
// Board.
package qrcode
