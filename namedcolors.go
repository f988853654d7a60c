package vtcore

// namedColorTable maps normalized (lowercased, space-stripped) X11 color
// names to RGB triples. This is the subset of rgb.txt that xterm-derived
// color-scheme and OSC 4/10/11 specs commonly reference; grounded on the
// documented contract of original_source/src/terminal/terminal/named-colors.h
// ("all color names supported by xterm are recognized").
var namedColorTable = map[string][3]uint8{
	"black":           {0x00, 0x00, 0x00},
	"white":           {0xFF, 0xFF, 0xFF},
	"red":             {0xFF, 0x00, 0x00},
	"green":           {0x00, 0xFF, 0x00},
	"blue":            {0x00, 0x00, 0xFF},
	"yellow":          {0xFF, 0xFF, 0x00},
	"cyan":            {0x00, 0xFF, 0xFF},
	"magenta":         {0xFF, 0x00, 0xFF},
	"gray":            {0xBE, 0xBE, 0xBE},
	"grey":            {0xBE, 0xBE, 0xBE},
	"darkgray":        {0xA9, 0xA9, 0xA9},
	"darkgrey":        {0xA9, 0xA9, 0xA9},
	"lightgray":       {0xD3, 0xD3, 0xD3},
	"lightgrey":       {0xD3, 0xD3, 0xD3},
	"darkred":         {0x8B, 0x00, 0x00},
	"darkgreen":       {0x00, 0x64, 0x00},
	"darkblue":        {0x00, 0x00, 0x8B},
	"navy":            {0x00, 0x00, 0x80},
	"navyblue":        {0x00, 0x00, 0x80},
	"orange":          {0xFF, 0xA5, 0x00},
	"darkorange":      {0xFF, 0x8C, 0x00},
	"purple":          {0xA0, 0x20, 0xF0},
	"darkslateblue":   {0x48, 0x3D, 0x8B},
	"slateblue":       {0x6A, 0x5A, 0xCD},
	"steelblue":       {0x46, 0x82, 0xB4},
	"skyblue":         {0x87, 0xCE, 0xEB},
	"lightblue":       {0xAD, 0xD8, 0xE6},
	"lightgreen":      {0x90, 0xEE, 0x90},
	"lightyellow":     {0xFF, 0xFF, 0xE0},
	"lightcyan":       {0xE0, 0xFF, 0xFF},
	"lightpink":       {0xFF, 0xB6, 0xC1},
	"pink":            {0xFF, 0xC0, 0xCB},
	"brown":           {0xA5, 0x2A, 0x2A},
	"gold":            {0xFF, 0xD7, 0x00},
	"silver":          {0xC0, 0xC0, 0xC0},
	"indigo":          {0x4B, 0x00, 0x82},
	"violet":          {0xEE, 0x82, 0xEE},
	"turquoise":       {0x40, 0xE0, 0xD0},
	"salmon":          {0xFA, 0x80, 0x72},
	"khaki":           {0xF0, 0xE6, 0x8C},
	"coral":           {0xFF, 0x7F, 0x50},
	"chocolate":       {0xD2, 0x69, 0x1E},
	"tomato":          {0xFF, 0x63, 0x47},
	"olive":           {0x80, 0x80, 0x00},
	"maroon":          {0x80, 0x00, 0x00},
	"teal":            {0x00, 0x80, 0x80},
	"beige":           {0xF5, 0xF5, 0xDC},
	"ivory":           {0xFF, 0xFF, 0xF0},
	"lavender":        {0xE6, 0xE6, 0xFA},
	"plum":            {0xDD, 0xA0, 0xDD},
	"orchid":          {0xDA, 0x70, 0xD6},
	"tan":             {0xD2, 0xB4, 0x8C},
	"wheat":           {0xF5, 0xDE, 0xB3},
	"seagreen":        {0x2E, 0x8B, 0x57},
	"forestgreen":     {0x22, 0x8B, 0x22},
	"limegreen":       {0x32, 0xCD, 0x32},
	"firebrick":       {0xB2, 0x22, 0x22},
	"crimson":         {0xDC, 0x14, 0x3C},
	"hotpink":         {0xFF, 0x69, 0xB4},
	"deeppink":        {0xFF, 0x14, 0x93},
	"dodgerblue":      {0x1E, 0x90, 0xFF},
	"royalblue":       {0x41, 0x69, 0xE1},
	"cornflowerblue":  {0x64, 0x95, 0xED},
	"cadetblue":       {0x5F, 0x9E, 0xA0},
	"powderblue":      {0xB0, 0xE0, 0xE6},
	"mintcream":       {0xF5, 0xFF, 0xFA},
	"honeydew":        {0xF0, 0xFF, 0xF0},
	"snow":            {0xFF, 0xFA, 0xFA},
	"linen":           {0xFA, 0xF0, 0xE6},
	"seashell":        {0xFF, 0xF5, 0xEE},
	"thistle":         {0xD8, 0xBF, 0xD8},
	"transparent":     {0x00, 0x00, 0x00},
}
