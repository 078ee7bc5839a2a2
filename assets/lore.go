package assets

// RangeLore holds atmospheric snippets per difficulty (index 0 unused).
// One is picked at random when the range opens.
var RangeLore = [4][]string{
	{},
	{
		"Straw targets line the far wall. Some of them are breathing.",
		"A sign reads: 'Collect your arrows AFTER the whistle.' There is no whistle.",
	},
	{
		"The range master left in a hurry. Their quiver is still on the hook.",
		"Scorch marks on the back wall suggest someone brought flame arrows last week.",
	},
	{
		"The targets at this end of the range shoot back.",
		"Someone has flooded the middle lanes. The lava was already there.",
	},
}

// SpeciesLore holds a one-liner shown the first time each species is
// seen. Keyed by creature name.
var SpeciesLore = map[string]string{
	"goblin":                "Goblins throw darts with more enthusiasm than aim.",
	"kobold":                "Kobolds carry slings and an inexhaustible supply of pebbles.",
	"orc archer":            "Orc archers were trained to fire into melee. Their friends are used to it.",
	"centaur":               "Centaurs never stand still long enough to be a fair target.",
	"hill giant":            "The hill giant is holding a boulder as though it were a snowball.",
	"merfolk javelineer":    "Merfolk javelineers throw with the whole weight of the tide behind them.",
	"deep elf sharpshooter": "The sharpshooter's bolts go through the first thing they meet and keep going.",
	"spriggan":              "A spriggan with a blowgun. Whatever is on those needles makes people sleepy.",
	"frost giant":           "Everything the frost giant's bow fires comes out cold, whatever it was to begin with.",
	"war dog":               "Your war dog is loyal and always standing exactly where you want to shoot.",
	"squire":                "The squire has a crossbow and strict instructions not to use it near you.",
}
