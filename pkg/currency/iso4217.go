package currency

// ISO 4217 catalogue. Countries are ISO 3166-1 alpha-2 region codes.
var (
	AED = &Currency{code: "AED", name: "UAE Dirham", numericCode: "784", symbol: "د.إ", pluralSymbol: "د.إ", fractionalUnit: "Fils", fractionalUnits: 100, digits: 2, countries: []string{"AE"}}
	AFN = &Currency{code: "AFN", name: "Afghani", numericCode: "971", symbol: "؋", pluralSymbol: "؋", fractionalUnit: "Pul", fractionalUnits: 100, digits: 2, countries: []string{"AF"}}
	ALL = &Currency{code: "ALL", name: "Lek", numericCode: "008", symbol: "L", pluralSymbol: "L", fractionalUnit: "Qindarka", fractionalUnits: 100, digits: 2, countries: []string{"AL"}}
	AMD = &Currency{code: "AMD", name: "Armenian Dram", numericCode: "051", symbol: "֏", pluralSymbol: "֏", fractionalUnit: "Luma", fractionalUnits: 100, digits: 2, countries: []string{"AM"}}
	ANG = &Currency{code: "ANG", name: "Netherlands Antillean Guilder", numericCode: "532", symbol: "ƒ", pluralSymbol: "ƒ", fractionalUnit: "Cent", fractionalUnits: 100, digits: 2, countries: []string{"CW", "SX"}}
	AOA = &Currency{code: "AOA", name: "Kwanza", numericCode: "973", symbol: "Kz", pluralSymbol: "Kz", fractionalUnit: "Cêntimo", fractionalUnits: 100, digits: 2, countries: []string{"AO"}}
	ARS = &Currency{code: "ARS", name: "Argentine Peso", numericCode: "032", symbol: "$", pluralSymbol: "$", fractionalUnit: "Centavo", fractionalUnits: 100, digits: 2, countries: []string{"AR"}}
	AUD = &Currency{code: "AUD", name: "Australian Dollar", numericCode: "036", symbol: "$", pluralSymbol: "$", fractionalUnit: "Cent", fractionalUnits: 100, digits: 2, countries: []string{"AU", "CX", "CC", "HM", "KI", "NR", "NF", "TV"}}
	AWG = &Currency{code: "AWG", name: "Aruban Florin", numericCode: "533", symbol: "ƒ", pluralSymbol: "ƒ", fractionalUnit: "Cent", fractionalUnits: 100, digits: 2, countries: []string{"AW"}}
	AZN = &Currency{code: "AZN", name: "Azerbaijan Manat", numericCode: "944", symbol: "₼", pluralSymbol: "₼", fractionalUnit: "Qəpik", fractionalUnits: 100, digits: 2, countries: []string{"AZ"}}
	BAM = &Currency{code: "BAM", name: "Convertible Mark", numericCode: "977", symbol: "KM", pluralSymbol: "KM", fractionalUnit: "Fening", fractionalUnits: 100, digits: 2, countries: []string{"BA"}}
	BBD = &Currency{code: "BBD", name: "Barbados Dollar", numericCode: "052", symbol: "$", pluralSymbol: "$", fractionalUnit: "Cent", fractionalUnits: 100, digits: 2, countries: []string{"BB"}}
	BDT = &Currency{code: "BDT", name: "Taka", numericCode: "050", symbol: "৳", pluralSymbol: "৳", fractionalUnit: "Poisha", fractionalUnits: 100, digits: 2, countries: []string{"BD"}}
	BGN = &Currency{code: "BGN", name: "Bulgarian Lev", numericCode: "975", symbol: "лв", pluralSymbol: "лв", fractionalUnit: "Stotinka", fractionalUnits: 100, digits: 2, countries: []string{"BG"}}
	BHD = &Currency{code: "BHD", name: "Bahraini Dinar", numericCode: "048", symbol: ".د.ب", pluralSymbol: ".د.ب", fractionalUnit: "Fils", fractionalUnits: 1000, digits: 3, countries: []string{"BH"}}
	BIF = &Currency{code: "BIF", name: "Burundi Franc", numericCode: "108", symbol: "FBu", pluralSymbol: "FBu", fractionalUnit: "", fractionalUnits: 1, digits: 0, countries: []string{"BI"}}
	BMD = &Currency{code: "BMD", name: "Bermudian Dollar", numericCode: "060", symbol: "$", pluralSymbol: "$", fractionalUnit: "Cent", fractionalUnits: 100, digits: 2, countries: []string{"BM"}}
	BND = &Currency{code: "BND", name: "Brunei Dollar", numericCode: "096", symbol: "$", pluralSymbol: "$", fractionalUnit: "Sen", fractionalUnits: 100, digits: 2, countries: []string{"BN"}}
	BOB = &Currency{code: "BOB", name: "Boliviano", numericCode: "068", symbol: "Bs.", pluralSymbol: "Bs.", fractionalUnit: "Centavo", fractionalUnits: 100, digits: 2, countries: []string{"BO"}}
	BRL = &Currency{code: "BRL", name: "Brazilian Real", numericCode: "986", symbol: "R$", pluralSymbol: "R$", fractionalUnit: "Centavo", fractionalUnits: 100, digits: 2, countries: []string{"BR"}}
	BSD = &Currency{code: "BSD", name: "Bahamian Dollar", numericCode: "044", symbol: "$", pluralSymbol: "$", fractionalUnit: "Cent", fractionalUnits: 100, digits: 2, countries: []string{"BS"}}
	BTN = &Currency{code: "BTN", name: "Ngultrum", numericCode: "064", symbol: "Nu.", pluralSymbol: "Nu.", fractionalUnit: "Chetrum", fractionalUnits: 100, digits: 2, countries: []string{"BT"}}
	BWP = &Currency{code: "BWP", name: "Pula", numericCode: "072", symbol: "P", pluralSymbol: "P", fractionalUnit: "Thebe", fractionalUnits: 100, digits: 2, countries: []string{"BW"}}
	BYN = &Currency{code: "BYN", name: "Belarusian Ruble", numericCode: "933", symbol: "Br", pluralSymbol: "Br", fractionalUnit: "Kapeyka", fractionalUnits: 100, digits: 2, countries: []string{"BY"}}
	BZD = &Currency{code: "BZD", name: "Belize Dollar", numericCode: "084", symbol: "$", pluralSymbol: "$", fractionalUnit: "Cent", fractionalUnits: 100, digits: 2, countries: []string{"BZ"}}
	CAD = &Currency{code: "CAD", name: "Canadian Dollar", numericCode: "124", symbol: "$", pluralSymbol: "$", fractionalUnit: "Cent", fractionalUnits: 100, digits: 2, countries: []string{"CA"}}
	CDF = &Currency{code: "CDF", name: "Congolese Franc", numericCode: "976", symbol: "FC", pluralSymbol: "FC", fractionalUnit: "Centime", fractionalUnits: 100, digits: 2, countries: []string{"CD"}}
	CHF = &Currency{code: "CHF", name: "Swiss Franc", numericCode: "756", symbol: "Fr.", pluralSymbol: "Fr.", fractionalUnit: "Rappen", fractionalUnits: 100, digits: 2, countries: []string{"CH", "LI"}}
	CLP = &Currency{code: "CLP", name: "Chilean Peso", numericCode: "152", symbol: "$", pluralSymbol: "$", fractionalUnit: "", fractionalUnits: 1, digits: 0, countries: []string{"CL"}}
	CNY = &Currency{code: "CNY", name: "Yuan Renminbi", numericCode: "156", symbol: "¥", pluralSymbol: "¥", fractionalUnit: "Fen", fractionalUnits: 100, digits: 2, countries: []string{"CN"}}
	COP = &Currency{code: "COP", name: "Colombian Peso", numericCode: "170", symbol: "$", pluralSymbol: "$", fractionalUnit: "Centavo", fractionalUnits: 100, digits: 2, countries: []string{"CO"}}
	CRC = &Currency{code: "CRC", name: "Costa Rican Colon", numericCode: "188", symbol: "₡", pluralSymbol: "₡", fractionalUnit: "Céntimo", fractionalUnits: 100, digits: 2, countries: []string{"CR"}}
	CUP = &Currency{code: "CUP", name: "Cuban Peso", numericCode: "192", symbol: "$", pluralSymbol: "$", fractionalUnit: "Centavo", fractionalUnits: 100, digits: 2, countries: []string{"CU"}}
	CVE = &Currency{code: "CVE", name: "Cabo Verde Escudo", numericCode: "132", symbol: "$", pluralSymbol: "$", fractionalUnit: "Centavo", fractionalUnits: 100, digits: 2, countries: []string{"CV"}}
	CZK = &Currency{code: "CZK", name: "Czech Koruna", numericCode: "203", symbol: "Kč", pluralSymbol: "Kč", fractionalUnit: "Haléř", fractionalUnits: 100, digits: 2, countries: []string{"CZ"}}
	DJF = &Currency{code: "DJF", name: "Djibouti Franc", numericCode: "262", symbol: "Fdj", pluralSymbol: "Fdj", fractionalUnit: "", fractionalUnits: 1, digits: 0, countries: []string{"DJ"}}
	DKK = &Currency{code: "DKK", name: "Danish Krone", numericCode: "208", symbol: "kr", pluralSymbol: "kr", fractionalUnit: "Øre", fractionalUnits: 100, digits: 2, countries: []string{"DK", "FO", "GL"}}
	DOP = &Currency{code: "DOP", name: "Dominican Peso", numericCode: "214", symbol: "$", pluralSymbol: "$", fractionalUnit: "Centavo", fractionalUnits: 100, digits: 2, countries: []string{"DO"}}
	DZD = &Currency{code: "DZD", name: "Algerian Dinar", numericCode: "012", symbol: "د.ج", pluralSymbol: "د.ج", fractionalUnit: "Santeem", fractionalUnits: 100, digits: 2, countries: []string{"DZ"}}
	EGP = &Currency{code: "EGP", name: "Egyptian Pound", numericCode: "818", symbol: "£", pluralSymbol: "£", fractionalUnit: "Piastre", fractionalUnits: 100, digits: 2, countries: []string{"EG"}}
	ERN = &Currency{code: "ERN", name: "Nakfa", numericCode: "232", symbol: "Nfk", pluralSymbol: "Nfk", fractionalUnit: "Cent", fractionalUnits: 100, digits: 2, countries: []string{"ER"}}
	ETB = &Currency{code: "ETB", name: "Ethiopian Birr", numericCode: "230", symbol: "Br", pluralSymbol: "Br", fractionalUnit: "Santim", fractionalUnits: 100, digits: 2, countries: []string{"ET"}}
	EUR = &Currency{code: "EUR", name: "Euro", numericCode: "978", symbol: "€", pluralSymbol: "€", fractionalUnit: "Cent", fractionalUnits: 100, digits: 2, countries: []string{"AD", "AT", "BE", "CY", "DE", "EE", "ES", "FI", "FR", "GR", "HR", "IE", "IT", "LT", "LU", "LV", "MC", "ME", "MT", "NL", "PT", "SI", "SK", "SM", "VA", "XK"}}
	FJD = &Currency{code: "FJD", name: "Fiji Dollar", numericCode: "242", symbol: "$", pluralSymbol: "$", fractionalUnit: "Cent", fractionalUnits: 100, digits: 2, countries: []string{"FJ"}}
	FKP = &Currency{code: "FKP", name: "Falkland Islands Pound", numericCode: "238", symbol: "£", pluralSymbol: "£", fractionalUnit: "Penny", fractionalUnits: 100, digits: 2, countries: []string{"FK"}}
	GBP = &Currency{code: "GBP", name: "Pound Sterling", numericCode: "826", symbol: "£", pluralSymbol: "£", fractionalUnit: "Penny", fractionalUnits: 100, digits: 2, countries: []string{"GB", "IM", "JE", "GG"}}
	GEL = &Currency{code: "GEL", name: "Lari", numericCode: "981", symbol: "₾", pluralSymbol: "₾", fractionalUnit: "Tetri", fractionalUnits: 100, digits: 2, countries: []string{"GE"}}
	GHS = &Currency{code: "GHS", name: "Ghana Cedi", numericCode: "936", symbol: "₵", pluralSymbol: "₵", fractionalUnit: "Pesewa", fractionalUnits: 100, digits: 2, countries: []string{"GH"}}
	GIP = &Currency{code: "GIP", name: "Gibraltar Pound", numericCode: "292", symbol: "£", pluralSymbol: "£", fractionalUnit: "Penny", fractionalUnits: 100, digits: 2, countries: []string{"GI"}}
	GMD = &Currency{code: "GMD", name: "Dalasi", numericCode: "270", symbol: "D", pluralSymbol: "D", fractionalUnit: "Butut", fractionalUnits: 100, digits: 2, countries: []string{"GM"}}
	GNF = &Currency{code: "GNF", name: "Guinean Franc", numericCode: "324", symbol: "FG", pluralSymbol: "FG", fractionalUnit: "", fractionalUnits: 1, digits: 0, countries: []string{"GN"}}
	GTQ = &Currency{code: "GTQ", name: "Quetzal", numericCode: "320", symbol: "Q", pluralSymbol: "Q", fractionalUnit: "Centavo", fractionalUnits: 100, digits: 2, countries: []string{"GT"}}
	GYD = &Currency{code: "GYD", name: "Guyana Dollar", numericCode: "328", symbol: "$", pluralSymbol: "$", fractionalUnit: "Cent", fractionalUnits: 100, digits: 2, countries: []string{"GY"}}
	HKD = &Currency{code: "HKD", name: "Hong Kong Dollar", numericCode: "344", symbol: "$", pluralSymbol: "$", fractionalUnit: "Cent", fractionalUnits: 100, digits: 2, countries: []string{"HK"}}
	HNL = &Currency{code: "HNL", name: "Lempira", numericCode: "340", symbol: "L", pluralSymbol: "L", fractionalUnit: "Centavo", fractionalUnits: 100, digits: 2, countries: []string{"HN"}}
	HTG = &Currency{code: "HTG", name: "Gourde", numericCode: "332", symbol: "G", pluralSymbol: "G", fractionalUnit: "Centime", fractionalUnits: 100, digits: 2, countries: []string{"HT"}}
	HUF = &Currency{code: "HUF", name: "Forint", numericCode: "348", symbol: "Ft", pluralSymbol: "Ft", fractionalUnit: "Fillér", fractionalUnits: 100, digits: 2, countries: []string{"HU"}}
	IDR = &Currency{code: "IDR", name: "Rupiah", numericCode: "360", symbol: "Rp", pluralSymbol: "Rp", fractionalUnit: "Sen", fractionalUnits: 100, digits: 2, countries: []string{"ID"}}
	ILS = &Currency{code: "ILS", name: "New Israeli Sheqel", numericCode: "376", symbol: "₪", pluralSymbol: "₪", fractionalUnit: "Agora", fractionalUnits: 100, digits: 2, countries: []string{"IL", "PS"}}
	INR = &Currency{code: "INR", name: "Indian Rupee", numericCode: "356", symbol: "₹", pluralSymbol: "₹", fractionalUnit: "Paisa", fractionalUnits: 100, digits: 2, countries: []string{"IN", "BT"}}
	IQD = &Currency{code: "IQD", name: "Iraqi Dinar", numericCode: "368", symbol: "ع.د", pluralSymbol: "ع.د", fractionalUnit: "Fils", fractionalUnits: 1000, digits: 3, countries: []string{"IQ"}}
	IRR = &Currency{code: "IRR", name: "Iranian Rial", numericCode: "364", symbol: "﷼", pluralSymbol: "﷼", fractionalUnit: "Dinar", fractionalUnits: 100, digits: 2, countries: []string{"IR"}}
	ISK = &Currency{code: "ISK", name: "Iceland Krona", numericCode: "352", symbol: "kr", pluralSymbol: "kr", fractionalUnit: "", fractionalUnits: 1, digits: 0, countries: []string{"IS"}}
	JMD = &Currency{code: "JMD", name: "Jamaican Dollar", numericCode: "388", symbol: "$", pluralSymbol: "$", fractionalUnit: "Cent", fractionalUnits: 100, digits: 2, countries: []string{"JM"}}
	JOD = &Currency{code: "JOD", name: "Jordanian Dinar", numericCode: "400", symbol: "د.ا", pluralSymbol: "د.ا", fractionalUnit: "Fils", fractionalUnits: 1000, digits: 3, countries: []string{"JO"}}
	JPY = &Currency{code: "JPY", name: "Yen", numericCode: "392", symbol: "¥", pluralSymbol: "¥", fractionalUnit: "", fractionalUnits: 1, digits: 0, countries: []string{"JP"}}
	KES = &Currency{code: "KES", name: "Kenyan Shilling", numericCode: "404", symbol: "Sh", pluralSymbol: "Shs", fractionalUnit: "Cent", fractionalUnits: 100, digits: 2, countries: []string{"KE"}}
	KGS = &Currency{code: "KGS", name: "Som", numericCode: "417", symbol: "с", pluralSymbol: "с", fractionalUnit: "Tyiyn", fractionalUnits: 100, digits: 2, countries: []string{"KG"}}
	KHR = &Currency{code: "KHR", name: "Riel", numericCode: "116", symbol: "៛", pluralSymbol: "៛", fractionalUnit: "Sen", fractionalUnits: 100, digits: 2, countries: []string{"KH"}}
	KMF = &Currency{code: "KMF", name: "Comorian Franc", numericCode: "174", symbol: "CF", pluralSymbol: "CF", fractionalUnit: "", fractionalUnits: 1, digits: 0, countries: []string{"KM"}}
	KPW = &Currency{code: "KPW", name: "North Korean Won", numericCode: "408", symbol: "₩", pluralSymbol: "₩", fractionalUnit: "Chon", fractionalUnits: 100, digits: 2, countries: []string{"KP"}}
	KRW = &Currency{code: "KRW", name: "Won", numericCode: "410", symbol: "₩", pluralSymbol: "₩", fractionalUnit: "", fractionalUnits: 1, digits: 0, countries: []string{"KR"}}
	KWD = &Currency{code: "KWD", name: "Kuwaiti Dinar", numericCode: "414", symbol: "د.ك", pluralSymbol: "د.ك", fractionalUnit: "Fils", fractionalUnits: 1000, digits: 3, countries: []string{"KW"}}
	KYD = &Currency{code: "KYD", name: "Cayman Islands Dollar", numericCode: "136", symbol: "$", pluralSymbol: "$", fractionalUnit: "Cent", fractionalUnits: 100, digits: 2, countries: []string{"KY"}}
	KZT = &Currency{code: "KZT", name: "Tenge", numericCode: "398", symbol: "₸", pluralSymbol: "₸", fractionalUnit: "Tiyn", fractionalUnits: 100, digits: 2, countries: []string{"KZ"}}
	LAK = &Currency{code: "LAK", name: "Lao Kip", numericCode: "418", symbol: "₭", pluralSymbol: "₭", fractionalUnit: "Att", fractionalUnits: 100, digits: 2, countries: []string{"LA"}}
	LBP = &Currency{code: "LBP", name: "Lebanese Pound", numericCode: "422", symbol: "ل.ل", pluralSymbol: "ل.ل", fractionalUnit: "Piastre", fractionalUnits: 100, digits: 2, countries: []string{"LB"}}
	LKR = &Currency{code: "LKR", name: "Sri Lanka Rupee", numericCode: "144", symbol: "Rs", pluralSymbol: "Rs", fractionalUnit: "Cent", fractionalUnits: 100, digits: 2, countries: []string{"LK"}}
	LRD = &Currency{code: "LRD", name: "Liberian Dollar", numericCode: "430", symbol: "$", pluralSymbol: "$", fractionalUnit: "Cent", fractionalUnits: 100, digits: 2, countries: []string{"LR"}}
	LSL = &Currency{code: "LSL", name: "Loti", numericCode: "426", symbol: "L", pluralSymbol: "M", fractionalUnit: "Sente", fractionalUnits: 100, digits: 2, countries: []string{"LS"}}
	LYD = &Currency{code: "LYD", name: "Libyan Dinar", numericCode: "434", symbol: "ل.د", pluralSymbol: "ل.د", fractionalUnit: "Dirham", fractionalUnits: 1000, digits: 3, countries: []string{"LY"}}
	MAD = &Currency{code: "MAD", name: "Moroccan Dirham", numericCode: "504", symbol: "د.م.", pluralSymbol: "د.م.", fractionalUnit: "Centime", fractionalUnits: 100, digits: 2, countries: []string{"MA", "EH"}}
	MDL = &Currency{code: "MDL", name: "Moldovan Leu", numericCode: "498", symbol: "L", pluralSymbol: "L", fractionalUnit: "Ban", fractionalUnits: 100, digits: 2, countries: []string{"MD"}}
	MGA = &Currency{code: "MGA", name: "Malagasy Ariary", numericCode: "969", symbol: "Ar", pluralSymbol: "Ar", fractionalUnit: "Iraimbilanja", fractionalUnits: 5, digits: 2, countries: []string{"MG"}}
	MKD = &Currency{code: "MKD", name: "Denar", numericCode: "807", symbol: "ден", pluralSymbol: "ден", fractionalUnit: "Deni", fractionalUnits: 100, digits: 2, countries: []string{"MK"}}
	MMK = &Currency{code: "MMK", name: "Kyat", numericCode: "104", symbol: "K", pluralSymbol: "K", fractionalUnit: "Pya", fractionalUnits: 100, digits: 2, countries: []string{"MM"}}
	MNT = &Currency{code: "MNT", name: "Tugrik", numericCode: "496", symbol: "₮", pluralSymbol: "₮", fractionalUnit: "Möngö", fractionalUnits: 100, digits: 2, countries: []string{"MN"}}
	MOP = &Currency{code: "MOP", name: "Pataca", numericCode: "446", symbol: "MOP$", pluralSymbol: "MOP$", fractionalUnit: "Avo", fractionalUnits: 100, digits: 2, countries: []string{"MO"}}
	MRU = &Currency{code: "MRU", name: "Ouguiya", numericCode: "929", symbol: "UM", pluralSymbol: "UM", fractionalUnit: "Khoums", fractionalUnits: 5, digits: 2, countries: []string{"MR"}}
	MUR = &Currency{code: "MUR", name: "Mauritius Rupee", numericCode: "480", symbol: "₨", pluralSymbol: "₨", fractionalUnit: "Cent", fractionalUnits: 100, digits: 2, countries: []string{"MU"}}
	MVR = &Currency{code: "MVR", name: "Rufiyaa", numericCode: "462", symbol: "Rf", pluralSymbol: "Rf", fractionalUnit: "Laari", fractionalUnits: 100, digits: 2, countries: []string{"MV"}}
	MWK = &Currency{code: "MWK", name: "Malawi Kwacha", numericCode: "454", symbol: "MK", pluralSymbol: "MK", fractionalUnit: "Tambala", fractionalUnits: 100, digits: 2, countries: []string{"MW"}}
	MXN = &Currency{code: "MXN", name: "Mexican Peso", numericCode: "484", symbol: "$", pluralSymbol: "$", fractionalUnit: "Centavo", fractionalUnits: 100, digits: 2, countries: []string{"MX"}}
	MYR = &Currency{code: "MYR", name: "Malaysian Ringgit", numericCode: "458", symbol: "RM", pluralSymbol: "RM", fractionalUnit: "Sen", fractionalUnits: 100, digits: 2, countries: []string{"MY"}}
	MZN = &Currency{code: "MZN", name: "Mozambique Metical", numericCode: "943", symbol: "MT", pluralSymbol: "MT", fractionalUnit: "Centavo", fractionalUnits: 100, digits: 2, countries: []string{"MZ"}}
	NAD = &Currency{code: "NAD", name: "Namibia Dollar", numericCode: "516", symbol: "$", pluralSymbol: "$", fractionalUnit: "Cent", fractionalUnits: 100, digits: 2, countries: []string{"NA"}}
	NGN = &Currency{code: "NGN", name: "Naira", numericCode: "566", symbol: "₦", pluralSymbol: "₦", fractionalUnit: "Kobo", fractionalUnits: 100, digits: 2, countries: []string{"NG"}}
	NIO = &Currency{code: "NIO", name: "Cordoba Oro", numericCode: "558", symbol: "C$", pluralSymbol: "C$", fractionalUnit: "Centavo", fractionalUnits: 100, digits: 2, countries: []string{"NI"}}
	NOK = &Currency{code: "NOK", name: "Norwegian Krone", numericCode: "578", symbol: "kr", pluralSymbol: "kr", fractionalUnit: "Øre", fractionalUnits: 100, digits: 2, countries: []string{"NO", "SJ", "BV"}}
	NPR = &Currency{code: "NPR", name: "Nepalese Rupee", numericCode: "524", symbol: "रू", pluralSymbol: "रू", fractionalUnit: "Paisa", fractionalUnits: 100, digits: 2, countries: []string{"NP"}}
	NZD = &Currency{code: "NZD", name: "New Zealand Dollar", numericCode: "554", symbol: "$", pluralSymbol: "$", fractionalUnit: "Cent", fractionalUnits: 100, digits: 2, countries: []string{"NZ", "CK", "NU", "PN", "TK"}}
	OMR = &Currency{code: "OMR", name: "Rial Omani", numericCode: "512", symbol: "ر.ع.", pluralSymbol: "ر.ع.", fractionalUnit: "Baisa", fractionalUnits: 1000, digits: 3, countries: []string{"OM"}}
	PAB = &Currency{code: "PAB", name: "Balboa", numericCode: "590", symbol: "B/.", pluralSymbol: "B/.", fractionalUnit: "Centésimo", fractionalUnits: 100, digits: 2, countries: []string{"PA"}}
	PEN = &Currency{code: "PEN", name: "Sol", numericCode: "604", symbol: "S/", pluralSymbol: "S/", fractionalUnit: "Céntimo", fractionalUnits: 100, digits: 2, countries: []string{"PE"}}
	PGK = &Currency{code: "PGK", name: "Kina", numericCode: "598", symbol: "K", pluralSymbol: "K", fractionalUnit: "Toea", fractionalUnits: 100, digits: 2, countries: []string{"PG"}}
	PHP = &Currency{code: "PHP", name: "Philippine Peso", numericCode: "608", symbol: "₱", pluralSymbol: "₱", fractionalUnit: "Sentimo", fractionalUnits: 100, digits: 2, countries: []string{"PH"}}
	PKR = &Currency{code: "PKR", name: "Pakistan Rupee", numericCode: "586", symbol: "₨", pluralSymbol: "₨", fractionalUnit: "Paisa", fractionalUnits: 100, digits: 2, countries: []string{"PK"}}
	PLN = &Currency{code: "PLN", name: "Zloty", numericCode: "985", symbol: "zł", pluralSymbol: "zł", fractionalUnit: "Grosz", fractionalUnits: 100, digits: 2, countries: []string{"PL"}}
	PYG = &Currency{code: "PYG", name: "Guarani", numericCode: "600", symbol: "₲", pluralSymbol: "₲", fractionalUnit: "", fractionalUnits: 1, digits: 0, countries: []string{"PY"}}
	QAR = &Currency{code: "QAR", name: "Qatari Rial", numericCode: "634", symbol: "ر.ق", pluralSymbol: "ر.ق", fractionalUnit: "Dirham", fractionalUnits: 100, digits: 2, countries: []string{"QA"}}
	RON = &Currency{code: "RON", name: "Romanian Leu", numericCode: "946", symbol: "lei", pluralSymbol: "lei", fractionalUnit: "Ban", fractionalUnits: 100, digits: 2, countries: []string{"RO"}}
	RSD = &Currency{code: "RSD", name: "Serbian Dinar", numericCode: "941", symbol: "дин.", pluralSymbol: "дин.", fractionalUnit: "Para", fractionalUnits: 100, digits: 2, countries: []string{"RS"}}
	RUB = &Currency{code: "RUB", name: "Russian Ruble", numericCode: "643", symbol: "₽", pluralSymbol: "₽", fractionalUnit: "Kopeck", fractionalUnits: 100, digits: 2, countries: []string{"RU"}}
	RWF = &Currency{code: "RWF", name: "Rwanda Franc", numericCode: "646", symbol: "FRw", pluralSymbol: "FRw", fractionalUnit: "", fractionalUnits: 1, digits: 0, countries: []string{"RW"}}
	SAR = &Currency{code: "SAR", name: "Saudi Riyal", numericCode: "682", symbol: "ر.س", pluralSymbol: "ر.س", fractionalUnit: "Halala", fractionalUnits: 100, digits: 2, countries: []string{"SA"}}
	SBD = &Currency{code: "SBD", name: "Solomon Islands Dollar", numericCode: "090", symbol: "$", pluralSymbol: "$", fractionalUnit: "Cent", fractionalUnits: 100, digits: 2, countries: []string{"SB"}}
	SCR = &Currency{code: "SCR", name: "Seychelles Rupee", numericCode: "690", symbol: "₨", pluralSymbol: "₨", fractionalUnit: "Cent", fractionalUnits: 100, digits: 2, countries: []string{"SC"}}
	SDG = &Currency{code: "SDG", name: "Sudanese Pound", numericCode: "938", symbol: "ج.س.", pluralSymbol: "ج.س.", fractionalUnit: "Piastre", fractionalUnits: 100, digits: 2, countries: []string{"SD"}}
	SEK = &Currency{code: "SEK", name: "Swedish Krona", numericCode: "752", symbol: "kr", pluralSymbol: "kr", fractionalUnit: "Öre", fractionalUnits: 100, digits: 2, countries: []string{"SE"}}
	SGD = &Currency{code: "SGD", name: "Singapore Dollar", numericCode: "702", symbol: "$", pluralSymbol: "$", fractionalUnit: "Cent", fractionalUnits: 100, digits: 2, countries: []string{"SG"}}
	SHP = &Currency{code: "SHP", name: "Saint Helena Pound", numericCode: "654", symbol: "£", pluralSymbol: "£", fractionalUnit: "Penny", fractionalUnits: 100, digits: 2, countries: []string{"SH"}}
	SLE = &Currency{code: "SLE", name: "Leone", numericCode: "925", symbol: "Le", pluralSymbol: "Le", fractionalUnit: "Cent", fractionalUnits: 100, digits: 2, countries: []string{"SL"}}
	SOS = &Currency{code: "SOS", name: "Somali Shilling", numericCode: "706", symbol: "Sh", pluralSymbol: "Shs", fractionalUnit: "Cent", fractionalUnits: 100, digits: 2, countries: []string{"SO"}}
	SRD = &Currency{code: "SRD", name: "Surinam Dollar", numericCode: "968", symbol: "$", pluralSymbol: "$", fractionalUnit: "Cent", fractionalUnits: 100, digits: 2, countries: []string{"SR"}}
	SSP = &Currency{code: "SSP", name: "South Sudanese Pound", numericCode: "728", symbol: "£", pluralSymbol: "£", fractionalUnit: "Piastre", fractionalUnits: 100, digits: 2, countries: []string{"SS"}}
	STN = &Currency{code: "STN", name: "Dobra", numericCode: "930", symbol: "Db", pluralSymbol: "Db", fractionalUnit: "Cêntimo", fractionalUnits: 100, digits: 2, countries: []string{"ST"}}
	SVC = &Currency{code: "SVC", name: "El Salvador Colon", numericCode: "222", symbol: "₡", pluralSymbol: "₡", fractionalUnit: "Centavo", fractionalUnits: 100, digits: 2, countries: []string{"SV"}}
	SYP = &Currency{code: "SYP", name: "Syrian Pound", numericCode: "760", symbol: "£", pluralSymbol: "£", fractionalUnit: "Piastre", fractionalUnits: 100, digits: 2, countries: []string{"SY"}}
	SZL = &Currency{code: "SZL", name: "Lilangeni", numericCode: "748", symbol: "L", pluralSymbol: "E", fractionalUnit: "Cent", fractionalUnits: 100, digits: 2, countries: []string{"SZ"}}
	THB = &Currency{code: "THB", name: "Baht", numericCode: "764", symbol: "฿", pluralSymbol: "฿", fractionalUnit: "Satang", fractionalUnits: 100, digits: 2, countries: []string{"TH"}}
	TJS = &Currency{code: "TJS", name: "Somoni", numericCode: "972", symbol: "SM", pluralSymbol: "SM", fractionalUnit: "Diram", fractionalUnits: 100, digits: 2, countries: []string{"TJ"}}
	TMT = &Currency{code: "TMT", name: "Turkmenistan New Manat", numericCode: "934", symbol: "m", pluralSymbol: "m", fractionalUnit: "Tenge", fractionalUnits: 100, digits: 2, countries: []string{"TM"}}
	TND = &Currency{code: "TND", name: "Tunisian Dinar", numericCode: "788", symbol: "د.ت", pluralSymbol: "د.ت", fractionalUnit: "Millime", fractionalUnits: 1000, digits: 3, countries: []string{"TN"}}
	TOP = &Currency{code: "TOP", name: "Pa'anga", numericCode: "776", symbol: "T$", pluralSymbol: "T$", fractionalUnit: "Seniti", fractionalUnits: 100, digits: 2, countries: []string{"TO"}}
	TRY = &Currency{code: "TRY", name: "Turkish Lira", numericCode: "949", symbol: "₺", pluralSymbol: "₺", fractionalUnit: "Kuruş", fractionalUnits: 100, digits: 2, countries: []string{"TR"}}
	TTD = &Currency{code: "TTD", name: "Trinidad and Tobago Dollar", numericCode: "780", symbol: "$", pluralSymbol: "$", fractionalUnit: "Cent", fractionalUnits: 100, digits: 2, countries: []string{"TT"}}
	TWD = &Currency{code: "TWD", name: "New Taiwan Dollar", numericCode: "901", symbol: "$", pluralSymbol: "$", fractionalUnit: "Cent", fractionalUnits: 100, digits: 2, countries: []string{"TW"}}
	TZS = &Currency{code: "TZS", name: "Tanzanian Shilling", numericCode: "834", symbol: "Sh", pluralSymbol: "Shs", fractionalUnit: "Cent", fractionalUnits: 100, digits: 2, countries: []string{"TZ"}}
	UAH = &Currency{code: "UAH", name: "Hryvnia", numericCode: "980", symbol: "₴", pluralSymbol: "₴", fractionalUnit: "Kopiyka", fractionalUnits: 100, digits: 2, countries: []string{"UA"}}
	UGX = &Currency{code: "UGX", name: "Uganda Shilling", numericCode: "800", symbol: "Sh", pluralSymbol: "Shs", fractionalUnit: "", fractionalUnits: 1, digits: 0, countries: []string{"UG"}}
	USD = &Currency{code: "USD", name: "US Dollar", numericCode: "840", symbol: "$", pluralSymbol: "$", fractionalUnit: "Cent", fractionalUnits: 100, digits: 2, countries: []string{"US", "AS", "BQ", "EC", "FM", "GU", "IO", "MH", "MP", "PA", "PR", "PW", "SV", "TC", "TL", "UM", "VG", "VI"}}
	UYU = &Currency{code: "UYU", name: "Peso Uruguayo", numericCode: "858", symbol: "$", pluralSymbol: "$", fractionalUnit: "Centésimo", fractionalUnits: 100, digits: 2, countries: []string{"UY"}}
	UZS = &Currency{code: "UZS", name: "Uzbekistan Sum", numericCode: "860", symbol: "сўм", pluralSymbol: "сўм", fractionalUnit: "Tiyin", fractionalUnits: 100, digits: 2, countries: []string{"UZ"}}
	VES = &Currency{code: "VES", name: "Bolívar Soberano", numericCode: "928", symbol: "Bs.S", pluralSymbol: "Bs.S", fractionalUnit: "Céntimo", fractionalUnits: 100, digits: 2, countries: []string{"VE"}}
	VND = &Currency{code: "VND", name: "Dong", numericCode: "704", symbol: "₫", pluralSymbol: "₫", fractionalUnit: "", fractionalUnits: 1, digits: 0, countries: []string{"VN"}}
	VUV = &Currency{code: "VUV", name: "Vatu", numericCode: "548", symbol: "VT", pluralSymbol: "VT", fractionalUnit: "", fractionalUnits: 1, digits: 0, countries: []string{"VU"}}
	WST = &Currency{code: "WST", name: "Tala", numericCode: "882", symbol: "T", pluralSymbol: "T", fractionalUnit: "Sene", fractionalUnits: 100, digits: 2, countries: []string{"WS"}}
	XAF = &Currency{code: "XAF", name: "CFA Franc BEAC", numericCode: "950", symbol: "FCFA", pluralSymbol: "FCFA", fractionalUnit: "", fractionalUnits: 1, digits: 0, countries: []string{"CM", "CF", "TD", "CG", "GQ", "GA"}}
	XCD = &Currency{code: "XCD", name: "East Caribbean Dollar", numericCode: "951", symbol: "$", pluralSymbol: "$", fractionalUnit: "Cent", fractionalUnits: 100, digits: 2, countries: []string{"AG", "DM", "GD", "KN", "LC", "VC", "AI", "MS"}}
	XOF = &Currency{code: "XOF", name: "CFA Franc BCEAO", numericCode: "952", symbol: "CFA", pluralSymbol: "CFA", fractionalUnit: "", fractionalUnits: 1, digits: 0, countries: []string{"BJ", "BF", "CI", "GW", "ML", "NE", "SN", "TG"}}
	XPF = &Currency{code: "XPF", name: "CFP Franc", numericCode: "953", symbol: "₣", pluralSymbol: "₣", fractionalUnit: "", fractionalUnits: 1, digits: 0, countries: []string{"PF", "NC", "WF"}}
	YER = &Currency{code: "YER", name: "Yemeni Rial", numericCode: "886", symbol: "﷼", pluralSymbol: "﷼", fractionalUnit: "Fils", fractionalUnits: 100, digits: 2, countries: []string{"YE"}}
	ZAR = &Currency{code: "ZAR", name: "Rand", numericCode: "710", symbol: "R", pluralSymbol: "R", fractionalUnit: "Cent", fractionalUnits: 100, digits: 2, countries: []string{"ZA", "LS", "NA"}}
	ZMW = &Currency{code: "ZMW", name: "Zambian Kwacha", numericCode: "967", symbol: "ZK", pluralSymbol: "ZK", fractionalUnit: "Ngwee", fractionalUnits: 100, digits: 2, countries: []string{"ZM"}}
	ZWL = &Currency{code: "ZWL", name: "Zimbabwe Dollar", numericCode: "932", symbol: "$", pluralSymbol: "$", fractionalUnit: "Cent", fractionalUnits: 100, digits: 2, countries: []string{"ZW"}}
)

var catalogue = []*Currency{
	AED, AFN, ALL, AMD, ANG, AOA, ARS, AUD, AWG, AZN, BAM, BBD, BDT, BGN, BHD,
	BIF, BMD, BND, BOB, BRL, BSD, BTN, BWP, BYN, BZD, CAD, CDF, CHF, CLP, CNY,
	COP, CRC, CUP, CVE, CZK, DJF, DKK, DOP, DZD, EGP, ERN, ETB, EUR, FJD, FKP,
	GBP, GEL, GHS, GIP, GMD, GNF, GTQ, GYD, HKD, HNL, HTG, HUF, IDR, ILS, INR,
	IQD, IRR, ISK, JMD, JOD, JPY, KES, KGS, KHR, KMF, KPW, KRW, KWD, KYD, KZT,
	LAK, LBP, LKR, LRD, LSL, LYD, MAD, MDL, MGA, MKD, MMK, MNT, MOP, MRU, MUR,
	MVR, MWK, MXN, MYR, MZN, NAD, NGN, NIO, NOK, NPR, NZD, OMR, PAB, PEN, PGK,
	PHP, PKR, PLN, PYG, QAR, RON, RSD, RUB, RWF, SAR, SBD, SCR, SDG, SEK, SGD,
	SHP, SLE, SOS, SRD, SSP, STN, SVC, SYP, SZL, THB, TJS, TMT, TND, TOP, TRY,
	TTD, TWD, TZS, UAH, UGX, USD, UYU, UZS, VES, VND, VUV, WST, XAF, XCD, XOF,
	XPF, YER, ZAR, ZMW, ZWL,
}
