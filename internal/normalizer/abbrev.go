package normalizer

// abbrev expands chat abbreviations and common misspelled short forms to
// plain words before spell correction runs. Keys are matched against
// lowercased word tokens; expansions may be multi-word and are re-tokenized
// by the caller.
var abbrev = map[string]string{
	// pronouns and contractions
	"im": "i am", "i'm": "i am", "m": "am",
	"u": "you", "ur": "your", "urs": "yours",
	"r": "are", "y": "why", "yup": "yes",
	"n": "and", "nd": "and", "d": "the",
	"bt": "but", "bcoz": "because", "cuz": "because",
	"coz": "because", "cz": "because", "frm": "from", "alot": "a lot",

	// greetings
	"hii": "hi", "hiii": "hi", "hlw": "hello",
	"helo": "hello", "heyya": "hey", "heyy": "hey",
	"gm": "good morning", "gn": "good night",
	"gudnyt": "good night", "gudmrng": "good morning",

	// common short forms
	"pls": "please", "plz": "please", "plzz": "please",
	"plsss": "please", "sry": "sorry", "srz": "sorry",
	"thx": "thanks", "tnx": "thanks", "tq": "thank you",
	"ty": "thank you", "tysm": "thank you so much",
	"thnx": "thanks", "thnks": "thanks", "thanq": "thank you",
	"nyc": "nice", "nycly": "nicely", "gud": "good",
	"gr8": "great", "grt": "great",

	// abbreviations
	"asap": "as soon as possible", "bday": "birthday",
	"hbd": "happy birthday", "gn8": "good night",
	"gmorning": "good morning", "gdaftrn": "good afternoon",
	"tc": "take care", "gnite": "good night", "nite": "night",

	// internet slang
	"lol": "laughing out loud", "rofl": "rolling on the floor laughing",
	"lmao": "laughing my ass off", "omg": "oh my god",
	"wtf": "what the fuck", "wth": "what the hell",
	"idk": "i do not know", "idc": "i do not care",
	"imo": "in my opinion", "imho": "in my humble opinion",
	"brb": "be right back", "bbl": "be back later",
	"ttyl": "talk to you later", "tbh": "to be honest",
	"ikr": "i know right", "ofc": "of course",
	"smh": "shaking my head", "np": "no problem",
	"nvm": "never mind", "btw": "by the way",
	"bc": "because", "afaik": "as far as i know", "omw": "on my way",
	"gg": "good game", "dw": "do not worry",
	"hmu": "hit me up", "wyd": "what are you doing",
	"wru": "where are you", "sup": "what is up",
	"wbu": "what about you", "hbu": "how about you",
	"lmk": "let me know", "idts": "i do not think so",
	"ily": "i love you", "ilu": "i love you", "ilysm": "i love you so much",

	// numbers glued to words (kept for completeness; the tokenizer splits
	// digit runs off, so only all-letter keys can actually fire)
	"b4": "before", "l8r": "later",
	"2day": "today", "2mrw": "tomorrow", "2moro": "tomorrow",
	"4u": "for you", "4me": "for me", "bff": "best friends forever",
	"bf": "boyfriend", "gf": "girlfriend", "bffs": "best friends forever",
	"xoxo": "hugs and kisses",

	// chat fillers
	"ya": "yeah", "yaar": "friend", "dude": "friend",
	"bro": "brother", "sis": "sister", "bruh": "brother",
	"jk": "just kidding", "k": "okay", "kk": "okay",
	"okie": "okay", "okies": "okay", "okk": "okay",
	"yolo": "you only live once", "fyi": "for your information",
	"faq": "frequently asked questions",

	// extra
	"atm": "at the moment", "cya": "see you",
	"g2g": "got to go", "gtg": "got to go",
	"msg": "message", "txt": "text", "vid": "video",
	"pic": "picture", "dp": "display picture",
	"bio": "biography", "status": "status message",
	"prolly": "probably", "smth": "something",
	"tho": "though", "thru": "through", "ppl": "people",
	"tmrw": "tomorrow", "tmr": "tomorrow",
	"becoz": "because", "luv": "love", "muah": "kiss",
	"xmas": "christmas", "ny": "new year",

	// Hinglish style
	"acha": "okay", "accha": "okay", "haan": "yes",
	"h": "yes", "nope": "no", "pakka": "sure", "mast": "great",
	"faltu": "useless", "thik": "fine",
	"sahi": "right", "chill": "relax", "chod": "leave",

	// academic and domain
	"clg": "college", "collg": "college", "colly": "college",
	"uni": "university", "dept": "department", "addr": "address",
	"batt": "battery",

	// proper-noun noise; the lexicon locks these after expansion
	"jodhpurr": "jodhpur", "jodpur": "jodhpur",
	"mysru": "mysore", "myrs": "mysore",

	// India-specific misspellings
	"kranataka": "karnataka", "kranatka": "karnataka",
	"krnatka": "karnataka", "krnataka": "karnataka",
	"karnatka": "karnataka", "karanataka": "karnataka",
	"karnatak": "karnataka",
	"rajsthan": "rajasthan", "rajashtan": "rajasthan",

	// common confusion
	"talkathon": "hackathon",
}
