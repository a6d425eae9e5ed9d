package grammar

import "github.com/ghettovoice/abnf"

// RFC 3986 appendix A, built from the ABNF operators bottom-up.

var (
	alpha  = abnf.Alt("ALPHA", abnf.Range("upper", []byte{'A'}, []byte{'Z'}), abnf.Range("lower", []byte{'a'}, []byte{'z'}))
	digit  = abnf.Range("DIGIT", []byte{'0'}, []byte{'9'})
	hexdig = abnf.Alt("HEXDIG", digit, abnf.Range("hex-upper", []byte{'A'}, []byte{'F'}), abnf.Range("hex-lower", []byte{'a'}, []byte{'f'}))

	unreserved = abnf.Alt("unreserved",
		alpha, digit,
		abnf.LiteralCS("-", []byte{'-'}), abnf.LiteralCS(".", []byte{'.'}),
		abnf.LiteralCS("_", []byte{'_'}), abnf.LiteralCS("~", []byte{'~'}),
	)
	subDelims = abnf.Alt("sub-delims",
		abnf.LiteralCS("!", []byte{'!'}), abnf.LiteralCS("$", []byte{'$'}),
		abnf.LiteralCS("&", []byte{'&'}), abnf.LiteralCS("'", []byte{'\''}),
		abnf.LiteralCS("(", []byte{'('}), abnf.LiteralCS(")", []byte{')'}),
		abnf.LiteralCS("*", []byte{'*'}), abnf.LiteralCS("+", []byte{'+'}),
		abnf.LiteralCS(",", []byte{','}), abnf.LiteralCS(";", []byte{';'}),
		abnf.LiteralCS("=", []byte{'='}),
	)
	pctEncoded = abnf.Concat("pct-encoded", abnf.LiteralCS("%", []byte{'%'}), hexdig, hexdig)
)

// scheme = ALPHA *( ALPHA / DIGIT / "+" / "-" / "." )
var scheme = abnf.Concat("scheme",
	alpha,
	abnf.Repeat0Inf("scheme-tail", abnf.Alt("scheme-char",
		alpha, digit,
		abnf.LiteralCS("+", []byte{'+'}), abnf.LiteralCS("-", []byte{'-'}), abnf.LiteralCS(".", []byte{'.'}),
	)),
)

// userinfo = *( unreserved / pct-encoded / sub-delims / ":" )
var userinfo = abnf.Repeat0Inf("userinfo", abnf.Alt("userinfo-char",
	unreserved, pctEncoded, subDelims, abnf.LiteralCS(":", []byte{':'}),
))

// port = *DIGIT
var port = abnf.Repeat0Inf("port", digit)

// dec-octet = DIGIT / %x31-39 DIGIT / "1" 2DIGIT / "2" %x30-34 DIGIT / "25" %x30-35
var decOctet = abnf.Alt("dec-octet",
	abnf.Concat("dec-octet-250", abnf.LiteralCS("25", []byte("25")), abnf.Range("0-5", []byte{'0'}, []byte{'5'})),
	abnf.Concat("dec-octet-200", abnf.LiteralCS("2", []byte{'2'}), abnf.Range("0-4", []byte{'0'}, []byte{'4'}), digit),
	abnf.Concat("dec-octet-100", abnf.LiteralCS("1", []byte{'1'}), abnf.RepeatN("2DIGIT", 2, digit)),
	abnf.Concat("dec-octet-10", abnf.Range("1-9", []byte{'1'}, []byte{'9'}), digit),
	digit,
)

// IPv4address = dec-octet "." dec-octet "." dec-octet "." dec-octet
var ipv4Address = abnf.Concat("IPv4address",
	decOctet, abnf.LiteralCS(".", []byte{'.'}),
	decOctet, abnf.LiteralCS(".", []byte{'.'}),
	decOctet, abnf.LiteralCS(".", []byte{'.'}),
	decOctet,
)

// h16 = 1*4HEXDIG ; ls32 = ( h16 ":" ) h16 / IPv4address
var (
	h16      = abnf.Repeat("h16", 1, 4, hexdig)
	colon    = abnf.LiteralCS(":", []byte{':'})
	dblColon = abnf.LiteralCS("::", []byte("::"))
	h16Colon = abnf.Concat("h16-colon", h16, colon)
	ls32     = abnf.Alt("ls32", abnf.Concat("ls32-pair", h16, colon, h16), ipv4Address)
)

// IPv6address per RFC 3986, one alternative per line.
var ipv6Address = abnf.Alt("IPv6address",
	abnf.Concat("v6-full", abnf.RepeatN("6(h16:)", 6, h16Colon), ls32),
	abnf.Concat("v6-0", dblColon, abnf.RepeatN("5(h16:)", 5, h16Colon), ls32),
	abnf.Concat("v6-1", abnf.Optional("opt-h16", h16), dblColon, abnf.RepeatN("4(h16:)", 4, h16Colon), ls32),
	abnf.Concat("v6-2", abnf.Optional("opt", abnf.Concat("pre", abnf.Repeat("*1(h16:)", 0, 1, h16Colon), h16)), dblColon, abnf.RepeatN("3(h16:)", 3, h16Colon), ls32),
	abnf.Concat("v6-3", abnf.Optional("opt", abnf.Concat("pre", abnf.Repeat("*2(h16:)", 0, 2, h16Colon), h16)), dblColon, abnf.RepeatN("2(h16:)", 2, h16Colon), ls32),
	abnf.Concat("v6-4", abnf.Optional("opt", abnf.Concat("pre", abnf.Repeat("*3(h16:)", 0, 3, h16Colon), h16)), dblColon, h16Colon, ls32),
	abnf.Concat("v6-5", abnf.Optional("opt", abnf.Concat("pre", abnf.Repeat("*4(h16:)", 0, 4, h16Colon), h16)), dblColon, ls32),
	abnf.Concat("v6-6", abnf.Optional("opt", abnf.Concat("pre", abnf.Repeat("*5(h16:)", 0, 5, h16Colon), h16)), dblColon, h16),
	abnf.Concat("v6-7", abnf.Optional("opt", abnf.Concat("pre", abnf.Repeat("*6(h16:)", 0, 6, h16Colon), h16)), dblColon),
)

// IPvFuture = "v" 1*HEXDIG "." 1*( unreserved / sub-delims / ":" )
var ipvFuture = abnf.Concat("IPvFuture",
	abnf.Literal("v", []byte{'v'}),
	abnf.Repeat1Inf("1*HEXDIG", hexdig),
	abnf.LiteralCS(".", []byte{'.'}),
	abnf.Repeat1Inf("IPvFuture-tail", abnf.Alt("IPvFuture-char", unreserved, subDelims, colon)),
)

// IP-literal = "[" ( IPv6address / IPvFuture ) "]"
var ipLiteral = abnf.Concat("IP-literal",
	abnf.LiteralCS("[", []byte{'['}),
	abnf.Alt("IP-literal-inner", ipv6Address, ipvFuture),
	abnf.LiteralCS("]", []byte{']'}),
)

// reg-name = *( unreserved / pct-encoded / sub-delims )
var regName = abnf.Repeat0Inf("reg-name", abnf.Alt("reg-name-char",
	unreserved, pctEncoded, subDelims,
))

// host = IP-literal / IPv4address / reg-name
var host = abnf.Alt("host", ipLiteral, ipv4Address, regName)

// pchar = unreserved / pct-encoded / sub-delims / ":" / "@"
var pchar = abnf.Alt("pchar",
	unreserved, pctEncoded, subDelims, colon, abnf.LiteralCS("@", []byte{'@'}),
)

// query = *( pchar / "/" / "?" )
var query = abnf.Repeat0Inf("query", abnf.Alt("query-char",
	pchar, abnf.LiteralCS("/", []byte{'/'}), abnf.LiteralCS("?", []byte{'?'}),
))
