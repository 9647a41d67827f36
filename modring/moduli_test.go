package modring

// Modulus tags used throughout the package tests. Each is a zero-size type
// binding one (width, modulus) pair.

// 8-bit
type mod13 struct{}    // small prime, radix 256; used for all worked examples
type mod251 struct{}   // largest 8-bit prime
type mod1 struct{}     // degenerate one-element ring
type mod10 struct{}    // even; valid for standard elements, invalid for Montgomery
type mod0 struct{}     // invalid everywhere
type mod255 struct{}   // odd composite right below the radix

func (mod13) Modulus() uint8  { return 13 }
func (mod251) Modulus() uint8 { return 251 }
func (mod1) Modulus() uint8   { return 1 }
func (mod10) Modulus() uint8  { return 10 }
func (mod0) Modulus() uint8   { return 0 }
func (mod255) Modulus() uint8 { return 255 }

// 16-bit
type mod65521 struct{} // largest 16-bit prime
type mod9999 struct{}  // odd composite

func (mod65521) Modulus() uint16 { return 65521 }
func (mod9999) Modulus() uint16  { return 9999 }

// 32-bit
type modBabyBear struct{} // 15*2^27 + 1, NTT-friendly
type mod4294967295 struct{}

func (modBabyBear) Modulus() uint32    { return 2013265921 }
func (mod4294967295) Modulus() uint32  { return 1<<32 - 1 } // odd composite at the top of the width

// 64-bit
type modGoldilocks struct{} // 2^64 - 2^32 + 1
type modMax64 struct{}      // 2^64 - 1, odd composite; exercises every carry path

func (modGoldilocks) Modulus() uint64 { return 18446744069414584321 }
func (modMax64) Modulus() uint64      { return 1<<64 - 1 }
