package trig

import "github.com/roach88/quarterwave/internal/fixed"

// curve holds 256 fixed-point sine samples spanning one quarter turn, one
// sample per 1/1024 of a rotation. Each entry is an offset-0 word encoding
// sin of the corresponding angle. The table is generated offline and is
// immutable for the lifetime of the process: curve[0] is exactly 0 and the
// sequence is monotonically non-decreasing, since sine is increasing over
// the first quarter turn.
var curve = [256]fixed.Word{
	0x0000000000000000, 0x01921F0FE6700710, 0x03243A3F9BD8F080, 0x04B64DAEF8C3BF40,
	0x0648557DE8D99F80, 0x07DA4DCC7473C040, 0x096C32BACA2AE680, 0x0AFE00694866A180,
	0x0C8FB2F886EC0A00, 0x0E214689606BF100, 0x0FB2B73CFC107000, 0x11440134D709B200,
	0x12D52092CE19F600, 0x1466117927209600, 0x15F6D00A9AA41900, 0x1787586A5D5B2100,
	0x1917A6BC29B42C00, 0x1AA7B724495C0400, 0x1C3785C79EC2D500, 0x1DC70ECBAE9FC800,
	0x1F564E56A9730E00, 0x20E5408F75063A00, 0x2273E19DB5EAEC00, 0x24022DA9D8F79C00,
	0x259020DD1CC27400, 0x271DB7619B1A2800, 0x28AAED62527CB400, 0x2A37BF0B2F8BE400,
	0x2BC42889167F8C00, 0x2D502609EC956400, 0x2EDBB3BCA17E6200, 0x3066CDD138C98A00,
	0x31F17078D34C1400, 0x337B97E5B886CC00, 0x3505404B6008A200, 0x368E65DE7ACE4400,
	0x381704D4FC9EC600, 0x399F196625650C00, 0x3B269FCA8A862200, 0x3CAD943C20343600,
	0x3E33F2F642BE3400, 0x3FB9B835BFDBF000, 0x413EE038DFF6B800, 0x42C3673F6F6E4000,
	0x4447498AC7D9DC00, 0x45CA835DD945DC00, 0x474D10FD336CF400, 0x48CEEEAF0EEDC800,
	0x4A5018BB567C1400, 0x4BD08B6BB00E1800, 0x4D50430B86054800, 0x4ECF3BE81052DC00,
	0x504D72505D980800, 0x51CAE2955C415000, 0x53478909E39DA800, 0x54C36202BCF09000,
	0x563E69D6AC7F7400, 0x57B89CDE7A9A4C00, 0x5931F774FC9F1800, 0x5AAA75F71DF85800,
	0x5C2214C3E9167800, 0x5D98D03C9063D800, 0x5F0EA4C477339C00, 0x60838EC13AAB1000,
	0x61F78A9ABAA58C00, 0x636A94BB2292BC00, 0x64DCA98EF24F5C00, 0x664DC58506F7F800,
	0x67BDE50EA3B62800, 0x692D049F7A879000, 0x6A9B20ADB4FF2400, 0x6C0835B1FD002400,
	0x6D74402785730000, 0x6EDF3C8C12F40400, 0x70492760047B9C00, 0x71B1FD265C002800,
	0x7319BA64C7117400, 0x74805BA3A76D6C00, 0x75E5DD6E1B8E2400, 0x774A3C5207316000,
	0x78AD74E01BD8EC00, 0x7A0F83ABE1444C00, 0x7B70654BBDE35400, 0x7CD01658FF41A000,
	0x7E2E936FE26AE800, 0x7F8BD92F9C484000, 0x80E7E43A61F5B800, 0x8242B1357110D000,
	0x839C3CC917FF6800, 0x84F483A0BE2F0800, 0x864B826AEC4C7800, 0x87A135D95473E800,
	0x88F59AA0DA591000, 0x8A48AD799B675800, 0x8B9A6B1EF6DA4800, 0x8CEAD04F95CDC000,
	0x8E39D9CD73464000, 0x8F87845DE430D800, 0x90D3CCC99F5AC000, 0x921EAFDCC560F800,
	0x93682A66E896F800, 0x94B0393B14E54000, 0x95F6D92FD79F5000, 0x973C071F4750B000,
	0x987FBFE70B81A800, 0x99C200686472B800, 0x9B02C58832CF9800, 0x9C420C2EFF591000,
	0x9D7FD1490285C800, 0x9EBC11C62C1A1800, 0x9FF6CA9A2AB6A000, 0xA12FF8BC735D8800,
	0xA267992848EEB000, 0xA39DA8DCC39A3800, 0xA4D224DCD849C000, 0xA6050A2F60002000,
	0xA73655DF1F2F4800, 0xA86604FACD04D800, 0xA99414951AACB000, 0xAAC081C4BA89B800,
	0xABEB49A46764F800, 0xAD146952EB928000, 0xAE3BDDF3280C6000, 0xAF61A4AC1B83A000,
	0xB085BAA8E966F000, 0xB1A81D18E0DF4800, 0xB2C8C92F83C1F000, 0xB3E7BC248D788000,
	0xB504F333F9DE6000, 0xB6206B9E0C13A800, 0xB73A22A755457000, 0xB8521598BB6BD000,
	0xB96841BF7FFCB000, 0xBA7CA46D46946800, 0xBB8F3AF81B930800, 0xBCA002BA7AAF2000,
	0xBDAEF913557D7800, 0xBEBC1B6619ED9000, 0xBFC7671AB8BB8000, 0xC0D0D99DABD65800,
	0xC1D8705FFCBB6800, 0xC2DE28D74AC66000, 0xC3E2007DD175F800, 0xC4E3F4D26EA55000,
	0xC5E40358A8BA0800, 0xC6E22998B4C66000, 0xC7DE651F7CA06000, 0xC8D8B37EA4ED1000,
	0xC9D1124C931FD800, 0xCAC77F24736EB800, 0xCBBBF7A63EBA0800, 0xCCAE7976C0691000,
	0xCD9F023F9C3A0000, 0xCE8D8FAF5406A800, 0xCF7A1F794D7CA000, 0xD064AF55D7C9B000,
	0xD14D3D02313C1000, 0xD233C6408CD64000, 0xD31848D817D71000, 0xD3FAC294FF34E800,
	0xD4DB3148750D1800, 0xD5B992C8B606A000, 0xD695E4F10EA88000, 0xD77025A1E0A39800,
	0xD84852C0A80FF800, 0xD91E6A38009D9800, 0xD9F269F7AAB89000, 0xDAC44FF490A02800,
	0xDB941A28CB71F000, 0xDC61C693A8274800, 0xDD2D5339AC869000, 0xDDF6BE249C075000,
	0xDEBE05637CA94800, 0xDF83270A9BBEE800, 0xE046213392AA4800, 0xE106F1FD4B8D7800,
	0xE1C5978C05ED8000, 0xE28210095B483800, 0xE33C59A4439CD800, 0xE3F4729119E79800,
	0xE4AA5909A08FA800, 0xE55E0B4D05C80000, 0xE60F879FE7E2E000, 0xE6BECC4C5997B000,
	0xE76BD7A1E63B9800, 0xE816A7F595EC9000, 0xE8BF3BA1F1AED800, 0xE9659107077CF800,
	0xEA09A68A6E49D000, 0xEAAB7A9749F58800, 0xEB4B0B9E4F345800, 0xEBE85815C767C800,
	0xEC835E79946A3000, 0xED1C1D4B344C3800, 0xEDB29311C504D000, 0xEE46BE5A08130000,
	0xEED89DB66611E000, 0xEF682FBEF23EC800, 0xEFF573116DF15800, 0xF08066514C056000,
	0xF1090827B4372800, 0xF18F574386712800, 0xF21352595E0BF000, 0xF294F82394FFE000,
	0xF314476247089000, 0xF3913EDB54BA2000, 0xF40BDD5A66886000, 0xF48421B0EFBF9000,
	0xF4FA0AB6316ED800, 0xF56D97473D447000, 0xF5DEC646F85BA000, 0xF64D969E1DFC2000,
	0xF6BA073B424B1800, 0xF7241712D4EDE000, 0xF78BC51F239E1000, 0xF7F110605CAF6000,
	0xF853F7DC9186B800, 0xF8B47A9FB902E800, 0xF91297BBB1D6C800, 0xF96E4E4844D4E800,
	0xF9C79D63272C4800, 0xFA1E842FFC96E800, 0xFA7301D859796800, 0xFAC5158BC4F42000,
	0xFB14BE7FBAE58000, 0xFB61FBEFADDDB800, 0xFBACCD1D0903B800, 0xFBF5314F31EB7000,
	0xFC3B27D38A5D4800, 0xFC7EAFFD720ED800, 0xFCBFC926484CD800, 0xFCFE72AD6D964000,
	0xFD3AABF84528B800, 0xFD747472367DD800, 0xFDABCB8CAEBA0800, 0xFDE0B0BF220C3000,
	0xFE1323870CFE9800, 0xFE432367F5B90800, 0xFE70AFEB6D33D800, 0xFE9BC8A1105C2000,
	0xFEC46D1E89292800, 0xFEEA9CFF8FA2B000, 0xFF0E57E5EAD84800, 0xFF2F9D7971CA0000,
	0xFF4E6D680C41D000, 0xFF6AC765B39E2000, 0xFF84AB2C738D6800, 0xFF9C187C6ABAE000,
	0xFFB10F1BCB6BF000, 0xFFC38ED6DC0EF800, 0xFFD3977FF7BAE800, 0xFFE128EF8E9FC000,
	0xFFEC430426686800, 0xFFF4E5A25A8D0800, 0xFFFB10B4DC96D800, 0xFFFEC42C74549000,
}

// Samples returns a copy of the curve table for inspection.
func Samples() []fixed.Word {
	out := curve
	return out[:]
}
