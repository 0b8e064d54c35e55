package normalize

// Categories is the fixed exposure vocabulary. Its order is the output
// column order, so appending or reordering entries changes the CSV contract
// for every downstream consumer. Categories outside this list are dropped
// during the pivot to keep the schema batch-independent.
var Categories = []string{
	"atm",
	"child abuse material",
	"darknet market",
	"decentralized exchange contract",
	"exchange",
	"fee",
	"fraud shop",
	"gambling",
	"high risk exchange",
	"high risk jurisdiction",
	"hosted wallet",
	"ico",
	"illicit actor-org",
	"infrastructure as a service",
	"lending contract",
	"merchant services",
	"mining",
	"mining pool",
	"mixing",
	"none",
	"online pharmacy",
	"other",
	"p2p exchange",
	"protocol privacy",
	"ransomware",
	"sanctions",
	"scam",
	"smart contract",
	"stolen funds",
	"terrorist financing",
	"token smart contract",
	"unnamed service",
}

var categoryIndex map[string]int

func init() {
	categoryIndex = make(map[string]int, len(Categories))
	for i, c := range Categories {
		categoryIndex[c] = i
	}
}

// KnownCategory reports whether c is part of the fixed vocabulary.
func KnownCategory(c string) bool {
	_, ok := categoryIndex[c]
	return ok
}
