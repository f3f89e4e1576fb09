package linguistic

// Fixed Spanish lexicons. All entries are pre-normalized (lowercase, no
// diacritics) because matching happens over the normalized text.

var stopwords = map[string]bool{
	"a": true, "al": true, "algo": true, "como": true, "con": true,
	"cual": true, "cuando": true, "de": true, "del": true, "donde": true,
	"el": true, "ella": true, "ellas": true, "ellos": true, "en": true,
	"era": true, "es": true, "esa": true, "ese": true, "eso": true,
	"esta": true, "estan": true, "este": true, "esto": true, "fue": true,
	"ha": true, "hay": true, "la": true, "las": true, "le": true,
	"lo": true, "los": true, "mas": true, "me": true, "mi": true,
	"muy": true, "no": true, "nos": true, "o": true, "para": true,
	"pero": true, "por": true, "que": true, "se": true, "ser": true,
	"si": true, "sin": true, "sobre": true, "son": true, "su": true,
	"sus": true, "te": true, "tiene": true, "tu": true, "un": true,
	"una": true, "uno": true, "y": true, "ya": true, "yo": true,
}

var timePast = []string{
	"ayer", "antes", "anterior", "pasado", "pasada", "hace", "fue",
	"era", "estuvo", "hice", "hiciste", "anteriormente",
}

var timePresent = []string{
	"ahora", "actualmente", "hoy", "en este momento", "estoy", "estamos",
}

var timeFuture = []string{
	"manana", "luego", "despues", "proximo", "proxima", "sera",
	"hare", "haremos", "pronto", "siguiente",
}

var timeImmediate = []string{
	"ya mismo", "ahora mismo", "inmediatamente", "urgente", "rapido",
	"cuanto antes", "de inmediato",
}

// negationPatterns is an ordered list; the first match wins and ordering is
// authoritative.
var negationPatterns = []string{
	"no quiero",
	"no me",
	"no lo",
	"nunca",
	"jamas",
	"tampoco",
	"de ninguna manera",
	"no ",
	"ni ",
	"sin ",
}

var positiveWords = []string{
	"gracias", "genial", "excelente", "perfecto", "increible",
	"fantastico", "me gusta", "me encanta", "funciona", "correcto",
	"bien", "bueno", "buena", "util",
}

var negativeWords = []string{
	"error", "falla", "fallo", "problema", "roto", "rota",
	"no funciona", "horrible", "terrible", "odio", "molesto",
	"frustrado", "frustrante", "lento", "mal", "malo", "bug",
}

// followUpStarters mark short continuations of the previous topic.
var followUpStarters = []string{
	"tambien", "ademas", "y ", "pero", "entonces", "si", "no",
	"ok", "vale", "dale", "claro", "eso", "esa", "ese", "igual",
}

var affirmations = []string{
	"si", "sip", "dale", "ok", "okay", "vale", "claro", "hazlo",
	"adelante", "confirmo", "por supuesto", "afirmativo", "correcto",
	"procede", "ejecuta",
}

var denials = []string{
	"no", "nop", "nunca", "jamas", "cancela", "cancelar", "detente",
	"para", "mejor no", "olvidalo", "negativo", "espera",
}
