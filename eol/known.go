package eol

// KnownEOLDates is a snapshot of the release EOL dates that GatherEOLDates
// extracts from the distro-info-data CSV files, for use on systems where
// those files are not installed. It is a process-wide constant; consumers
// must not mutate it.
var KnownEOLDates = Table{
	"debian": {
		"bo":      920934000,
		"buzz":    865461600,
		"etch":    1266188400,
		"hamm":    952556400,
		"jessie":  1528236000,
		"lenny":   1328482800,
		"potato":  1059516000,
		"rex":     896997600,
		"sarge":   1206831600,
		"slink":   972860400,
		"squeeze": 1401487200,
		"wheezy":  1461621600,
		"woody":   1151618400,
	},
	"ubuntu": {
		"artful":   1531951200,
		"bionic":   1682460000,
		"breezy":   1176415200,
		"cosmic":   1563400800,
		"dapper":   1306879200,
		"edgy":     1209074400,
		"feisty":   1224367200,
		"gutsy":    1240005600,
		"hardy":    1368050400,
		"hoary":    1162249200,
		"intrepid": 1272578400,
		"jaunty":   1287784800,
		"karmic":   1304028000,
		"lucid":    1430258400,
		"maverick": 1334008800,
		"natty":    1351375200,
		"oneiric":  1368050400,
		"precise":  1493157600,
		"quantal":  1400191200,
		"raring":   1390777200,
		"saucy":    1405548000,
		"trusty":   1555452000,
		"utopic":   1437602400,
		"vivid":    1453503600,
		"warty":    1146348000,
		"wily":     1469138400,
		"xenial":   1618956000,
		"yakkety":  1500501600,
		"zesty":    1515798000,
	},
}
