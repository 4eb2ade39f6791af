package fpconv

// ASCII digit emission helpers shared by the renderers.

// radix100Table holds the two-digit ASCII expansions of 0..99.
var radix100Table = [200]byte{
	'0', '0', '0', '1', '0', '2', '0', '3', '0', '4',
	'0', '5', '0', '6', '0', '7', '0', '8', '0', '9',
	'1', '0', '1', '1', '1', '2', '1', '3', '1', '4',
	'1', '5', '1', '6', '1', '7', '1', '8', '1', '9',
	'2', '0', '2', '1', '2', '2', '2', '3', '2', '4',
	'2', '5', '2', '6', '2', '7', '2', '8', '2', '9',
	'3', '0', '3', '1', '3', '2', '3', '3', '3', '4',
	'3', '5', '3', '6', '3', '7', '3', '8', '3', '9',
	'4', '0', '4', '1', '4', '2', '4', '3', '4', '4',
	'4', '5', '4', '6', '4', '7', '4', '8', '4', '9',
	'5', '0', '5', '1', '5', '2', '5', '3', '5', '4',
	'5', '5', '5', '6', '5', '7', '5', '8', '5', '9',
	'6', '0', '6', '1', '6', '2', '6', '3', '6', '4',
	'6', '5', '6', '6', '6', '7', '6', '8', '6', '9',
	'7', '0', '7', '1', '7', '2', '7', '3', '7', '4',
	'7', '5', '7', '6', '7', '7', '7', '8', '7', '9',
	'8', '0', '8', '1', '8', '2', '8', '3', '8', '4',
	'8', '5', '8', '6', '8', '7', '8', '8', '8', '9',
	'9', '0', '9', '1', '9', '2', '9', '3', '9', '4',
	'9', '5', '9', '6', '9', '7', '9', '8', '9', '9',
}

var pow10Small = [10]uint32{
	1, 10, 100, 1000, 10000, 100000, 1000000, 10000000, 100000000, 1000000000,
}

// writeNumber writes exactly length decimal digits of number into buf,
// zero padded, right aligned in buf[:length].
func writeNumber(buf []byte, number uint32, length int) {
	for length > 4 {
		c := number % 10000
		number /= 10000
		copy(buf[length-2:length], radix100Table[(c%100)*2:(c%100)*2+2])
		copy(buf[length-4:length-2], radix100Table[(c/100)*2:(c/100)*2+2])
		length -= 4
	}
	if length > 2 {
		c := number % 100
		number /= 100
		copy(buf[length-2:length], radix100Table[c*2:c*2+2])
		length -= 2
	}
	if length > 1 {
		copy(buf[:2], radix100Table[number*2:number*2+2])
	} else if length > 0 {
		buf[0] = byte('0' + number)
	}
}

// appendNumber appends exactly length decimal digits of number,
// zero padded.
func appendNumber(dst []byte, number uint32, length int) []byte {
	var buf [10]byte
	writeNumber(buf[:length], number, length)
	return append(dst, buf[:length]...)
}

// appendNineDigits appends number as exactly nine digits.
func appendNineDigits(dst []byte, number uint32) []byte {
	return appendNumber(dst, number, 9)
}

// appendRepeated appends length copies of d.
func appendRepeated(dst []byte, length int, d byte) []byte {
	for i := 0; i < length; i++ {
		dst = append(dst, d)
	}
	return dst
}

func appendZeros(dst []byte, length int) []byte { return appendRepeated(dst, length, '0') }

func appendNines(dst []byte, length int) []byte { return appendRepeated(dst, length, '9') }

// decimalLength9 returns the digit count of x < 10^9.
func decimalLength9(x uint32) int {
	switch {
	case x >= 100000000:
		return 9
	case x >= 10000000:
		return 8
	case x >= 1000000:
		return 7
	case x >= 100000:
		return 6
	case x >= 10000:
		return 5
	case x >= 1000:
		return 4
	case x >= 100:
		return 3
	case x >= 10:
		return 2
	default:
		return 1
	}
}

// decimalLength17 returns the digit count of x < 10^17.
func decimalLength17(x uint64) int {
	if x >= 1000000000 {
		return 9 + decimalLength9(uint32(x/1000000000))
	}
	return decimalLength9(uint32(x))
}

// writeSignificandDigits64 writes the decimal digits of significand into
// buf[:length], using the 8-digit split so the bulk of the work stays on
// 32-bit operations.
func writeSignificandDigits64(buf []byte, significand uint64, length int) {
	if significand>>32 != 0 {
		// The quotient of a 17-digit significand by 10^8 fits in 32 bits.
		q := uint32(significand / 100000000)
		r := uint32(significand) - 100000000*q
		writeNumber(buf[length-8:length], r, 8)
		writeNumber(buf[:length-8], q, length-8)
		return
	}
	writeNumber(buf[:length], uint32(significand), length)
}
