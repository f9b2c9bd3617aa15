package taxonomy

// Helpers keeping the declaration below close to tabular.
func line(key, name string, sub ...LineSpec) LineSpec {
	return LineSpec{Key: key, Name: name, Sub: sub}
}

var other = LineSpec{Key: OtherKey, Name: "Other"}

// Openings is the curated opening taxonomy. Family order and child
// order are deliberate: the classifier resolves substring-match ties
// by declaration order, so more specific keys appear before broader
// ones that could also match the same slug. Keys are substrings of
// chess.com opening slugs, which is why several look truncated
// ("se-Panov", "nna-Gambit"): the fragment is what disambiguates.
var Openings = []FamilySpec{
	{
		Code:    "uncommon",
		Name:    "Uncommon Openings",
		Aliases: []string{"A00", "A02-A03"},
		Lines: []LineSpec{
			line("Bird", "Bird's Opening",
				line("Froms", "From's Gambit"),
				line("Dutch", "Dutch Variation"),
				other,
			),
			line("Grob", "Grob Opening",
				line("Grob-Gambit", "Grob Gambit"),
				other,
			),
			line("Kings-F", "King's Fianchetto Opening"),
			line("Polish", "Polish Opening",
				line("Kuchark", "Kucharkowski-Meybohm Gambit"),
				other,
			),
			other,
		},
	},
	{
		Code: "A01",
		Name: "Nimzowitsch-Larsen Attack",
		Lines: []LineSpec{
			line("Classical", "Classical Variation"),
			line("English", "English Variation"),
			line("Indian", "Indian Variation"),
			line("Modern", "Modern Variation"),
			line("Symmetrical", "Symmetrical Variation"),
			other,
		},
	},
	{
		Code:    "A04-A06, A09",
		Name:    "Reti Opening",
		Aliases: []string{"A04-A06, A09"},
		Lines: []LineSpec{
			line("Dutch", "Dutch Variation"),
			line("Kingside", "Kingside Fianchetto Variation"),
			line("Queenside", "Queenside Fianchetto Variation"),
			line("Quiet", "Quiet System"),
			line("Nimzo", "Nimzo-Larsen Variations"),
			line("Kings-Indian", "King's Indian Attack Variations"),
			line("Reti-Gambit", "Reti Gambit",
				line("Accept", "Accepted"),
				line("Decline", "Declined"),
				other,
			),
			line("Tennison", "Tennison Gambit"),
			line("Sicilian", "Sicilian Invitation"),
			other,
		},
	},
	{
		Code:    "A07-A08",
		Name:    "King's Indian Attack",
		Aliases: []string{"A07-A08"},
		Lines: []LineSpec{
			line("Double", "Double Fianchetto Variation"),
			line("French", "French Variation"),
			line("Sicilian", "Sicilian Variation"),
			line("Yugoslav", "Yugoslav Variation"),
			other,
		},
	},
	{
		Code:    "A10-A39",
		Name:    "English Opening",
		Aliases: []string{"A10-A39"},
		Lines: []LineSpec{
			line("Great-S", "Great Snake Variation"),
			line("Caro", "Caro-Kann Defensive System"),
			line("Anglo-Indian", "Anglo-Indian Variation"),
			line("Anglo-Scandi", "Anglo-Scandinavian Variation"),
			line("Agincourt", "Agincourt Defense"),
			line("Kings-Eng", "King's English Variation"),
			line("Reversed-S", "Reversed Sicilian Variation"),
			line("Carls-B", "Carls-Bremen System"),
			line("Mikenas", "Mikenas-Carls Variation"),
			line("Symmetrical", "Symmetrical Variation"),
			line("ning-Four-K", "Four Knights Variation"),
			line("ning-Two-K", "Two Knights Variation"),
			other,
		},
	},
	{
		Code:    "d4",
		Name:    "Uncommon d4 Openings",
		Aliases: []string{"A40-A79", "D00-D05", "E10-E11"},
		Lines: []LineSpec{
			line("Englund", "Englund Gambit",
				line("Decline", "Declined"),
				other,
			),
			line("Modern-D", "Modern Defense (1. d4)",
				line("Ptero", "Pterodactyl Defense"),
				line("Averbak", "Averbakh-Kotov Variation"),
				other,
			),
			line("English", "English Defense"),
			line("Tartakower", "Tartakower Variation"),
			line("Benoni", "Benoni Defense",
				line("Old-B", "Old Benoni Defense"),
				line("Modern", "Modern Variation"),
				other,
			),
			line("Budapest", "Budapest Gambit"),
			line("Benko", "Benko Gambit",
				line("Decline", "Declined"),
				line("Half", "Half-Accepted"),
				line("Full", "Fully-Accepted"),
				other,
			),
			line("Tromp", "Trompowsky Attack",
				line("Classical", "Classical Variation"),
				line("Poison", "Poisoned-Pawn Variation"),
				other,
			),
			line("ti-Nimzo", "Anti-Nimzo-Indian Variation"),
			line("Indian", "Indian Game",
				line("East-I", "East Indian Variation"),
				line("Old-I", "Old Indian Defense"),
				line("Bogo-I", "Bogo-Indian Defense",
					line("Exchange", "Exchange Variation"),
					line("Grunfeld", "Grunfeld Variation"),
					line("Nimzo", "Nimzowitsch Variation"),
					line("Vitolins", "Vitolins Variation"),
					line("Wade-S", "Wade-Smyslov Variation"),
					other,
				),
				other,
			),
			line("Blumen", "Blumenfeld Countergambit"),
			line("Torre", "Torre Attack"),
			line("London", "London System",
				line("Accel", "Accelerated London System",
					line("Steinitz", "Steinitz Countergambit"),
					other,
				),
				other,
			),
			line("Chigorin", "Chigorin Variation"),
			line("Levitsky", "Levitsky Attack"),
			line("Stonewall", "Stonewall Attack"),
			line("Blackmar", "Blackmar Gambit"),
			line("Colle", "Colle System"),
			line("Symmetrical", "Symmetrical Variation"),
			line("Zuker", "Zukertort Variation"),
			line("Krause", "Krause Variation"),
			line("Pseudo", "Pseudo Catalan Variation"),
			other,
		},
	},
	{
		Code:    "A80-A99",
		Name:    "Dutch Defense",
		Aliases: []string{"A80-A99"},
		Lines: []LineSpec{
			line("Fianchetto", "Fianchetto Variation",
				line("Lenin", "Leningrad Variation"),
				other,
			),
			line("Staunton", "Staunton Gambit",
				line("Accept", "Accepted"),
				other,
			),
			line("Lenin", "Leningrad Variation"),
			line("Classic", "Classical Variation"),
			line("Normal", "Normal Variation"),
			line("Queen", "Queen's Knight Variation"),
			other,
		},
	},
	{
		Code:    "e4",
		Name:    "Uncommon e4 Openings",
		Aliases: []string{"B00", "C20-C22", "C40-C41", "C44, C46-C49"},
		Lines: []LineSpec{
			line("Nimzo", "Nimzowitsch Defense",
				line("Decline", "Declined"),
				line("Kennedy", "Kennedy Variation"),
				line("Scandi", "Scandinavian Variation"),
				other,
			),
			line("Philidor", "Philidor Defense",
				line("Exchange", "Exchange Variation"),
				line("Hanham", "Hanham Variation"),
				line("Nimzo", "Nimzowitsch Variation"),
				other,
			),
			line("Ponzi", "Ponziani Opening",
				line("Jaenisch", "Jaenisch Counterattack"),
				line("Steinitz", "Steinitz Variation"),
				line("Counter", "Ponziani Countergambit"),
				line("Spanish", "Spanish Variation"),
				line("Kings-P", "Weird Anti-Ponziani Lines"),
				other,
			),
			line("Three-K", "Three Knights Opening",
				line("Steinitz", "Steinitz Defense"),
				line("Winawer", "Winawer Defense"),
				other,
			),
			line("Four-K", "Four Knights Game",
				line("Gunsberg", "Gunsberg Variation"),
				line("Italian", "Italian Variation"),
				line("Scotch", "Scotch Variation"),
				line("Spanish", "Spanish Variation",
					line("Classic", "Classical Variation"),
					line("Rubin", "Rubinstein Countergambit"),
					line("Double", "Double Spanish Variation"),
					other,
				),
				other,
			),
			line("Owen", "Owen's Defense"),
			line("Wayward", "Wayward Queen Attack"),
			line("Center", "Center Game"),
			line("Danish", "Danish Gambit"),
			other,
		},
	},
	{
		Code: "B01",
		Name: "Scandinavian Defense",
		Lines: []LineSpec{
			line("Mieses", "Mieses-Kotrc Variation",
				line("Main-L", "Main Line"),
				line("Gubinsky", "Gubinsky-Melts Variation"),
				other,
			),
			line("Closed", "Closed Variation"),
			line("Modern", "Modern Variation"),
			other,
		},
	},
	{
		Code:    "B02-B05",
		Name:    "Alekhine's Defense",
		Aliases: []string{"B02-B05"},
		Lines: []LineSpec{
			line("Two-P", "Two Pawns Attack",
				line("Lasker", "Lasker Variation"),
				other,
			),
			line("Scandi", "Scandinavian Variation"),
			line("Four-P", "Four Pawns Attack"),
			line("Modern", "Modern Variation"),
			line("Normal", "Normal Variation"),
			other,
		},
	},
	{
		Code: "B06",
		Name: "Modern Defense",
		Lines: []LineSpec{
			line("Standard", "Standard Line",
				line("Ptero", "Pterodactyl Variation"),
				line("Two-K", "Two Knights Variation"),
				other,
			),
			line("Ptero", "Pterodactyl Variations"),
			line("Mongred", "Mongredien Defense"),
			line("Three-P", "Three Pawns Attack"),
			line("Gurgen", "Gurgenidze Variation"),
			line("Bishop-A", "Bishop Attack"),
			other,
		},
	},
	{
		Code:    "B07-B09",
		Name:    "Pirc Defense",
		Aliases: []string{"B07-B09"},
		Lines: []LineSpec{
			line("Main", "Main Line",
				line("Austrian", "Austrian Attack"),
				other,
			),
			line("Geller", "Geller System"),
			line("Classic", "Classical Variations"),
			line("Czech", "Czech Defense"),
			other,
		},
	},
	{
		Code:    "B10-B19",
		Name:    "Caro-Kann Defense",
		Aliases: []string{"B10-B19"},
		Lines: []LineSpec{
			line("Accelerated-P", "Accelerated Panov Attack"),
			line("Two-K", "Two Knights Attack",
				line("Mindeno", "Mindeno Variation"),
				other,
			),
			line("Advance", "Advance Variation",
				line("Tal-", "Tal Variation"),
				line("Botvin", "Botvinnik-Carls Defense"),
				line("Short", "Short Variation"),
				line("Van-", "Van der Wiel Attack"),
				line("Bronst", "Bronstein Variation"),
				other,
			),
			line("Exchange", "Exchange Variation"),
			line("se-Panov", "Panov Attack"),
			line("Gurgen", "Gurgenidze System"),
			line("Main-L", "Main Line"),
			line("Tartakower", "Tartakower Variation"),
			line("stein-L", "Bronstein-Larsen Variation"),
			line("Karpov", "Karpov Variation"),
			line("Classic", "Classical Variation"),
			line("Breyer", "Breyer Variation"),
			other,
		},
	},
	{
		Code:    "B20-B99",
		Name:    "Sicilian Defense",
		Aliases: []string{"B20-B99"},
		Lines: []LineSpec{
			line("Smith-Mor", "Smith-Morra Gambit",
				line("Accept", "Accepted"),
				line("Decline", "Declined",
					line("Center", "Center Formation"),
					line("Push", "Push Variation"),
					other,
				),
				line("Morphy", "Morphy Gambit"),
				other,
			),
			line("Alapin", "Alapin Variation",
				line("Delay", "Delayed Alapin Variation"),
				line("Barmen", "Barmen Defense"),
				line("Stoltz", "Stoltz Attack"),
				other,
			),
			line("Closed-S", "Closed Sicilian",
				line("Grand-P", "Grand Prix Attack"),
				line("Magnus", "Magnus Sicilian"),
				line("Traditional", "Traditional Variation"),
				line("Fianchetto", "Fianchetto Variation"),
				other,
			),
			line("Hyperaccel", "Hyperaccelerated Dragon"),
			line("OKelly", "O'Kelly Variation",
				line("Maroczy", "Maroczy Bind Variation"),
				line("Normal", "Normal System"),
				line("Venice", "Venice System"),
				line("Yerevan", "Yerevan System"),
				other,
			),
			line("Open", "Open Sicilian",
				line("Lowenth", "Lowenthal Variation"),
				line("Pelikan", "Pelikan and Sveshnikov Variations"),
				line("Accel", "Accelerated Dragon",
					line("Maroczy", "Maroczy Bind Formation"),
					line("Modern", "Modern Variation"),
					other,
				),
				line("en-Classic", "Classical Variation"),
				line("n-Dragon", "Dragon Variation"),
				line("Scheven", "Scheveningen Variation",
					line("Sozin", "Sozin Attack"),
					other,
				),
				line("Najdorf", "Najdorf Variation",
					line("Adam", "Adam's Attack"),
					line("English", "English Attack"),
					line("Freak", "Freak Attack"),
					line("Lipnit", "Lipnitsky Attack"),
					line("Opocensky", "Opocensky Variation"),
					line("Zagreb", "Zagreb Variation"),
					other,
				),
				other,
			),
			line("e-Kan", "Kan Variation",
				line("Maroczy", "Maroczy Bind Formation"),
				line("Modern", "Modern Variation"),
				line("Knight", "Knight Variation"),
				other,
			),
			line("Chekhover", "Chekhover Variation"),
			line("Canal", "Canal Attack"),
			line("Taimanov", "Taimanov Variation"),
			line("Four-K", "Four Knights Variation"),
			line("Nimzowitsch", "Nimzowitsch Variation"),
			line("Nyezhmet", "Nyezhmetdinov-Rossolimo Attack"),
			line("Snyder", "Snyder Variation"),
			line("Staunton-Coch", "Staunton-Cochrane Variation"),
			line("Bowdler", "Bowdler Attack"),
			line("Lasker-D", "Lasker-Dunne Atack"),
			line("Wing-G", "Wing Gambit"),
			line("McDonn", "McDonnell Attack"),
			line("Mengarini", "Mengarini Variation"),
			line("Pin-V", "Pin Variation"),
			line("Tartakower", "Tartakower Variation"),
			other,
		},
	},
	{
		Code:    "C00-C19",
		Name:    "French Defense",
		Aliases: []string{"C00-C19"},
		Lines: []LineSpec{
			line("Tarrasch", "Tarrasch Variation",
				line("Open", "Open Variation"),
				line("Close", "Closed Variation"),
				line("Guimard", "Guimard Defense"),
				other,
			),
			line("Classic", "Classical Variation",
				line("Steinitz", "Steinitz Variation"),
				line("MacCutch", "MacCutcheon Variation"),
				line("Burn", "Burn Variation"),
				other,
			),
			line("Winawer", "Winawer Variation",
				line("Advance", "Advance Variation"),
				line("Delay", "Delayed Exchange Variation"),
				line("Alekhine", "Alekhine-Maroczy Gambit"),
				other,
			),
			line("Advance", "Advance Variation",
				line("Paulsen", "Paulsen Attack"),
				line("Nimzo", "Nimzowitsch System"),
				line("Wade", "Wade Variation"),
				other,
			),
			line("e-Exchange", "Exchange Variation"),
			line("Rubinstein", "Rubinstein Variation"),
			line("Kings-I", "King's Indian Attack"),
			line("Two-K", "Two Knights Variation"),
			line("e-Normal", "Normal Variation"),
			line("Queens-K", "Queen's Knight Variation"),
			other,
		},
	},
	{
		Code:    "C23-C29",
		Name:    "Vienna Game",
		Aliases: []string{"C23-C29"},
		Lines: []LineSpec{
			line("Max-L", "Max Lange Defense",
				line("Steinitz", "Steinitz Gambit"),
				line("Meitner", "Meitner-Mieses Gambit"),
				line("Paulsen", "Paulsen Variation"),
				line("nna-Gambit", "Vienna Gambit",
					line("Knight", "Knight Variation"),
					other,
				),
				other,
			),
			line("Falkbeer", "Falkbeer Variation",
				line("Mieses", "Mieses Variation"),
				line("Stanley", "Stanley Variation"),
				line("nna-Gambit", "Vienna Gambit"),
				other,
			),
			line("Main-L", "Main Line",
				line("Paulsen", "Paulsen Attack"),
				other,
			),
			line("Anderssen", "Anderssen Defense"),
			line("Zhura", "Zhuravlev Countergambit"),
			line("Bishops", "Bishop's Opening",
				line("Berlin", "Berlin Variation",
					line("Spiel", "Spielmann Attack"),
					line("Vienna", "Vienna Hybrid Variation"),
					other,
				),
				other,
			),
			other,
		},
	},
	{
		Code:    "C30-C39",
		Name:    "King's Gambit",
		Aliases: []string{"C30-C39"},
		Lines: []LineSpec{
			line("Traditional", "Traditional Variation"),
			line("Bishops", "Bishop's Gambit"),
			line("Kieser", "Kieseritzky Gambit"),
			line("Decline", "Declined",
				line("Classic", "Classical Variation"),
				line("Queens-K", "Queen's Knight Defense"),
				line("Falkbeer", "Falkbeer Countergambit"),
				other,
			),
			other,
		},
	},
	{
		Code:    "C42-C43",
		Name:    "Petrov's Defense",
		Aliases: []string{"C42-C43"},
		Lines: []LineSpec{
			line("Stafford", "Stafford Gambit"),
			line("Classic", "Classical Attack",
				line("Marshall", "Marshall Variation"),
				line("Cozio", "Cozio Attack"),
				line("Damiano", "Damiano Variation"),
				line("Karklin", "Karklins-Martinovsky Variation"),
				line("Millenni", "Millennium Attack"),
				line("Nimzo", "Nimzowitsch Attack"),
				line("Paulsen", "Paulsen Attack"),
				other,
			),
			line("Three-K", "Three Knights Game"),
			line("Steinitz", "Steinitz Attack"),
			line("Urusov", "Urusov Gambit"),
			other,
		},
	},
	{
		Code: "C45",
		Name: "Scotch Game",
		Lines: []LineSpec{
			line("Classic", "Classical Variation",
				line("Inter", "Intermezzo Variation"),
				line("Potter", "Potter Variation"),
				other,
			),
			line("Schmidt", "Schmidt Variation",
				line("Mieses", "Mieses Variation"),
				line("Tarta", "Tartakower Variation"),
				other,
			),
			line("tch-Gambit", "Scotch Gambit"),
			other,
		},
	},
	{
		Code:    "C50-C59",
		Name:    "Italian Game",
		Aliases: []string{"C50-C59"},
		Lines: []LineSpec{
			line("Giuoco", "Giuoco Piano Game",
				line("Pianissimo", "Pianissimo Variation",
					line("Four-K", "Four Knights Variation"),
					other,
				),
				line("Evans", "Evans Gambit",
					line("Bronstein", "Bronstein Defense"),
					line("Pierce", "Pierce Defense"),
					line("Anderssen", "Anderssen Variation"),
					line("Stone", "Stone-Ware Variation"),
					line("Slow", "Slow Variation"),
					line("Decline", "Declined"),
					other,
				),
				line("Center", "Center Attack"),
				line("Main", "Main Line",
					line("Albin", "Albin Gambit"),
					line("Birds", "Bird's Attack"),
					other,
				),
				other,
			),
			line("Two-K", "Two Knights Defense"),
			line("Knight-A", "Fried Liver Attack",
				line("Polerio", "Polerio Defense"),
				line("Fritz", "Fritz Variation"),
				other,
			),
			line("Scotch", "Scotch Transpositions"),
			line("Traxler", "Traxler Counterattack"),
			other,
		},
	},
	{
		Code:    "C60-C99",
		Name:    "Ruy Lopez Opening",
		Aliases: []string{"C60-C99"},
		Lines: []LineSpec{
			line("Berlin", "Berlin Defense",
				line("Improved-S", "Improved Steinitz Defense",
					line("Hedge", "Hedgehog Variation"),
					other,
				),
				line("Rio-", "Rio Gambit"),
				line("lHerm", "l'Hermet Variation",
					line("Wall", "Berlin Wall Defense"),
					line("Showalter", "Showalter Variation"),
					other,
				),
				line("Bever", "Beverwijk Variation"),
				line("Kaufmann", "Kaufmann Variation"),
				line("Mortimer", "Mortimer Variation"),
				line("Nyholm", "Nyholm Attack"),
				other,
			),
			line("Morphy", "Morphy Defense",
				line("Open-", "Open Variation"),
				line("Close", "Closed Variation"),
				line("Modern-S", "Modern Steinitz Defense"),
				line("Anderssen", "Anderssen Variation"),
				line("Anti-M", "Anti-Marshall Variation"),
				line("Exchange", "Exchange Variation"),
				line("Caro", "Caro Variation"),
				line("Cozio", "Cozio Defense"),
				line("Deferred-Cl", "Deferred Classical Defense"),
				line("Deferred-Sc", "Deferred Schliemann Defense"),
				line("Deferred-Fi", "Deferred Fianchetto Defense"),
				other,
			),
			line("Old-Stein", "Old Steinitz Defense"),
			line("Classic", "Classical Defense"),
			line("Marshall", "Marshall Attack"),
			line("Jaenisch", "Schliemann Defense"),
			line("Cozio", "Cozio Defense"),
			line("Fianchetto", "Fianchetto Defense"),
			other,
		},
	},
	{
		Code:    "D06-D69",
		Name:    "Queen's Gambit",
		Aliases: []string{"D06-D69"},
		Lines: []LineSpec{
			line("Accept", "Accepted",
				line("Central", "Central Variation",
					line("Alekhine", "Alekhine System"),
					line("Greco", "Greco Variation"),
					line("Mcdonnell", "Mcdonnell Defense"),
					line("Modern", "Modern Defense"),
					other,
				),
				line("Old", "Old Variation"),
				line("Alekhine", "Alekhine Variation"),
				line("Showalter", "Showalter Variation"),
				line("Classic", "Classical Defense"),
				other,
			),
			line("Slav", "Slav Defense",
				line("Modern", "Modern Variation",
					line("Quiet", "Quiet Variation"),
					line("Two-K", "Two Knights Attack"),
					line("Three-K", "Three Knights Variation"),
					line("Alapin", "Alapin Variation"),
					line("Triangle", "Triangle System"),
					line("Chameleon", "Chameleon Variation"),
					line("Suchting", "Suchting Variation"),
					other,
				),
				line("Semi-S", "Semi-Slav Defense"),
				line("Exchange", "Exchange Variation"),
				line("v-Gambit", "Slav Gambit"),
				other,
			),
			line("Catalan", "Catalan Opening"),
			line("Tarrasch", "Tarrasch Defense",
				line("Semi-T", "Semi-Tarrasch Defense",
					line("Main", "Main Line"),
					other,
				),
				line("Two-K", "Two Knights Variation",
					line("Rubin", "Rubinstein System"),
					other,
				),
				other,
			),
			line("Decline", "Declined",
				line("Queens-K", "Queen's Knight Variation"),
				line("Three-K", "Three Knights Variation"),
				line("Modern", "Modern Variation"),
				line("Tradition", "Traditional Variation"),
				line("Ragozin", "Ragozin Defense"),
				line("Exchange", "Exchange Variation",
					line("Position", "Positional Line"),
					other,
				),
				line("Charou", "Charousek Variation"),
				line("Janowski", "Janowski Variation"),
				line("Albin", "Albin Countergambit"),
				line("Austrian", "Austrian Variation"),
				line("Marshall", "Marshall Defense"),
				line("Baltic", "Baltic Defense"),
				line("Chigorin", "Chigorin Defense"),
				other,
			),
			other,
		},
	},
	{
		Code:    "D70-D99",
		Name:    "Grunfeld Defense",
		Aliases: []string{"D70-D99"},
		Lines: []LineSpec{
			line("Exchange", "Exchange Variation",
				line("Modern", "Modern Variation"),
				line("Classic", "Classical Variation"),
				other,
			),
			line("Three-K", "Three Knights Variation"),
			line("Hungarian", "Hungarian Attack"),
			line("Russian", "Russian Variation",
				line("Prins", "Prins Variation"),
				other,
			),
			line("Neo-G", "Neo-Grunfeld Defense"),
			line("Anti-G", "Anti-Grunfeld Defense"),
			line("Stockholm", "Stockholm Variation"),
			line("Brinck", "Brinckmann Attack",
				line("Capablanca", "Capablanca Variation"),
				other,
			),
			other,
		},
	},
	{
		Code:    "E00-E09",
		Name:    "Catalan Opening",
		Aliases: []string{"E00-E09"},
		Lines: []LineSpec{
			line("g-Open", "Open Variation",
				line("Classic", "Classical Variation"),
				line("Modern", "Modern Variation"),
				other,
			),
			line("g-Close", "Closed Variation"),
			line("East-I", "East Indian Defense"),
			other,
		},
	},
	{
		Code:    "E12-E19",
		Name:    "Queen's Indian Defense",
		Aliases: []string{"E12-E19"},
		Lines: []LineSpec{
			line("Kasparov", "Kasparov Variation"),
			line("Spassky", "Spassky System"),
			line("Fianchetto", "Fianchetto Variation",
				line("Nimzo", "Nimzowitsch Variation"),
				line("Capab", "Capablanca Variation"),
				line("Classic", "Classical Variation"),
				line("Tradition", "Traditional Line"),
				line("Main-L", "Main Line"),
				other,
			),
			other,
		},
	},
	{
		Code:    "E20-E59",
		Name:    "Nimzo-Indian Defense",
		Aliases: []string{"E20-E59"},
		Lines: []LineSpec{
			line("Three-K", "Three Knights Variation"),
			line("Spiel", "Spielmann Variation"),
			line("Samisch", "Samisch Variation"),
			line("Lenin", "Leningrad Variation"),
			line("St-P", "St. Petersburg Variation",
				line("Fischer", "Fischer Variation"),
				other,
			),
			line("Reshev", "Reshevsky Variation"),
			line("Bishop", "Bishop Attack",
				line("Classic", "Classical Defense"),
				other,
			),
			line("Hubner", "Hubner Variation",
				line("red-Hub", "Deferred Hubner Variation"),
				other,
			),
			line("Kmoch", "Kmoch Variation"),
			line("Roman", "Romanishin-Kasparov System"),
			line("Gligor", "Gligoric System"),
			line("Normal", "Normal Line"),
			line("Classic", "Classical Variation",
				line("Keres", "Keres Defense"),
				line("Zurich", "Zurich Variaton"),
				line("Noa-", "Noa Variation"),
				line("Berlin", "Berlin Variation"),
				other,
			),
			other,
		},
	},
	{
		Code:    "E60-E99",
		Name:    "King's Indian Defense",
		Aliases: []string{"E60-E99"},
		Lines: []LineSpec{
			line("Fianchetto", "Fianchetto Variation"),
			line("Four-P", "Four Pawns Attack"),
			line("Samisch", "Samisch Variation",
				line("h-Gambit", "Samisch Gambit"),
				line("Steiner", "Steiner Attack"),
				line("Normal", "Normal Defense"),
				other,
			),
			line("Smyslov", "Smyslov Variation"),
			line("Kramer", "Kramer Variation"),
			line("Makogo", "Makogonov Variation"),
			line("Averbakh", "Averbakh Variation",
				line("Semi-A", "Semi-Averbakh Variation"),
				line("Benoni", "Benoni Variation"),
				other,
			),
			line("Orthodox", "Orthodox Variation",
				line("Exchange", "Exchange Variation"),
				other,
			),
			line("Petros", "Petrosian Variation"),
			line("Bayonet", "Bayonet Attack"),
			line("Normal", "Normal Variation"),
			other,
		},
	},
}
