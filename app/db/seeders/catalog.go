package seeders

// seedProduct is one catalog row. Price is whole rupees for the stated
// pack content.
type seedProduct struct {
	name    string
	content string
	price   int64
}

type seedCategory struct {
	name     string
	products []seedProduct
}

// fireworksCatalog is the complete store catalog in display order, as sold
// for the Diwali season. Names and prices come straight from the printed
// price list, typos included.
var fireworksCatalog = []seedCategory{
	{"Sparklers", []seedProduct{
		{"10 CM ELECTRIC SPARKLER", "1 BOX", 55},
		{"10 CM COLOUR SPARKLER", "1 BOX", 65},
		{"10 CM GREEN SPARKLERS", "1 BOX", 75},
		{"12 CM ELECTRIC SPARKLERS", "1 BOX", 90},
		{"12 CM COLOUR SPARKLERS", "1 BOX", 105},
		{"12 CM GREEN SPARKLER", "1 BOX", 110},
		{"15 CM ELECTRIC SPARKLERS", "1 BOX", 150},
		{"15 CM COLOUR SPARKLER", "1 BOX", 160},
		{"15 CM GREEN SPARKLER", "1 BOX", 170},
		{"30 CM ELECTRIC SPARKLER", "1 BOX", 150},
		{"30 CM COLOUR SPARKLER", "1 BOX", 160},
		{"30 CM GREEN SPARKLER", "1 BOX", 170},
		{"50 CM ELECTRIC SPARKLER", "1 BOX", 750},
		{"50 CM COLOUR SPARKLERS", "1 BOX", 800},
		{"ROTATE SPARKLERS", "1 BOX", 800},
	}},
	{"Flower Pots", []seedProduct{
		{"FLOWER POT BIG (10 PCS)", "1 BOX", 300},
		{"FLOWER POTS SPECIAL (10 PCS)", "1 BOX", 425},
		{"FLOWER POTS ASHOKA (10 PCS)", "1 BOX", 500},
		{"COLOUR KOTI (10 PCS)", "1 BOX", 850},
		{"TRI COLOUR FOUNTAIN (5 PCS)", "1 BOX", 1150},
		{"FLOWER POTS DELUXE (5 PCS)", "1 BOX", 875},
		{"5 IN ONE FUNCTIONS (1 PCS)", "1 BOX", 1750},
		{"PANCHANGARA (5 PCS)", "1 BOX", 500},
	}},
	{"Chakkar", []seedProduct{
		{"CHAKKAR BIG (10 PCS)", "1 BOX", 150},
		{"GROUND CHAKKAR SPECIAL (10 PCS)", "1 BOX", 310},
		{"GROUND CHAKKAR DELUXE (10 PCS)", "1 BOX", 450},
		{"SPINNER CHAKKAR PLASTIC (10 PCS)", "1 BOX", 600},
		{"DISCO WHEEL (10 PCS)", "1 BOX", 840},
		{"WIRE CHAKKAR SPECIAL (10 PCS)", "1 BOX", 800},
	}},
	{"Bijili", []seedProduct{
		{"RED BIJILI (100 PCS)", "1 PKT", 130},
		{"VARI BIJILI (100 PCS)", "1 PKT", 160},
	}},
	{"Enjoy Pencil", []seedProduct{
		{"ULTRA PENCIL (3 PCS)", "1 BOX", 350},
		{"POPCORN PENCIL (2 PCS)", "1 BOX", 840},
		{"MAGIC LIGHT, FIRE LIGHT (3 PCS)", "1 BOX", 750},
	}},
	{"One Sound Crackers", []seedProduct{
		{"2 3/4' KURUVI CRACKERS", "1 PKT", 30},
		{"4' LAKSHMI CRACKERS", "1 PKT", 100},
		{"4' LAKSHMI GOLD CRACKERS", "1 PKT", 140},
		{"5' MEGA DELUXE(12 PLY)", "1 PKT", 225},
	}},
	{"Rocket Bombs", []seedProduct{
		{"ROCKET BOMB (10 PCS)", "1 BOX", 240},
		{"TWO SOUND ROCKET(10 PCS)", "1 BOX", 475},
		{"LUNIK ROCKET(10 PCS)", "1 BOX", 450},
		{"WHISTLING ROCKET (10 PCS)", "1 BOX", 800},
	}},
	{"Bombs Items", []seedProduct{
		{"KING OF KING BOMB GREEN (10 PCS)", "1 BOX", 450},
		{"CLASSIC BOMB (10 PCS)", "1 BOX", 500},
	}},
	{"Giant & Deluxe", []seedProduct{
		{"28 GIANT CRACKERS", "1 PKT", 125},
		{"56 GIANT CRACKERS", "1 PKT", 250},
		{"24 DELUXE CRACKERS", "1 PKT", 250},
		{"50 DELUXE CRACKERS", "1 PKT", 500},
		{"100 DELUXE CRACKERS", "1 PKT", 1000},
	}},
	{"Baby Fancy Novelties", []seedProduct{
		{"KIT KAT (10 PCS)", "1 BOX", 200},
	}},
	{"Peacock Varieties", []seedProduct{
		{"PEACOCK FEATHER (5 PCS)", "1 BOX", 525},
		{"LITTLE PEACOCK (1 PCS)", "1 BOX", 500},
		{"MAGIC PEACOCK (1 PCS)", "1 BOX", 700},
		{"BADA PEACOCK 5 FEATHER (1 PCS)", "1 BOX", 2250},
	}},
	{"Mega Shower", []seedProduct{
		{"TIN FOUNTAIN (1 PCS)", "1 BOX", 550},
		{"6'' MEGA SHOWER FOUNTAIN (1 PCS)", "1 BOX", 1000},
		{"FUN ZONE FOUNTAIN (5 PCS)", "1 BOX", 1775},
	}},
	{"Multicolour Shots (Brand)", []seedProduct{
		{"12 SHOT FULL CRACKLING (BRAND)", "1 BOX", 800},
		{"30 SHOT MULTICOLOUR (BRAND)", "1 BOX", 2000},
		{"60 SHOT MULTICOLOUR (BRAND)", "1 BOX", 4000},
		{"120 SHOT MULTICOLOUR (BRAND)", "1 BOX", 8000},
		{"240 SHOT MULTICOLOUR (BRAND)", "1 BOX", 16000},
	}},
	{"Multicolour Shot", []seedProduct{
		{"30 SHOT MULTI COLOUR (OTHER)", "1 BOX", 1800},
		{"60 SHOT MULTI COLOUR (OTHER)", "1 BOX", 3600},
		{"120 SHOT MULTI COLOUR (OTHER)", "1 BOX", 7200},
	}},
	{"Mini Aerial Chotta Fancy", []seedProduct{
		{"CHOTTA FANCY (1 PCS)", "1 BOX", 185},
		{"7 SHOT (5 PCS)", "1 BOX", 550},
	}},
	{"Mega Display Series", []seedProduct{
		{"2'' AERIAL FANCY(1 PCS)", "1 BOX", 350},
		{"2 1/2 '' AERIAL FANCY (1 PCS)", "1 BOX", 630},
		{"2 1/2'' AERIAL FANCY(3 PCS) (BRAND)", "1 BOX", 1100},
		{"3 1/2 '' AERIAL FANCY(1 PCS)", "1 BOX", 1150},
		{"4 '' NAYAGARA BALLS (1 PCS)", "1 BOX", 1500},
		{"4'' AERIAL FANCY (1 PCS)", "1 BOX", 1475},
		{"4'' AERIAL FANCY 7 STEP (1 PCS)", "1 BOX", 1550},
		{"4'' AERIAL FANCY DOUBLE BALL (1 PCS)", "1 BOX", 2150},
		{"6'' AERIAL FANCY (2 PCS)", "1 BOX", 4100},
		{"3 1/2'' AERIAL FANCY (3 PCS)", "1 BOX", 4200},
		{"4 1/2 '' AERIAL FANCY WOW BLUE (1 PCS)", "1 BOX", 2000},
		{"3 1/2'' AERIAL FANCY GUN OUT", "1 BOX", 1150},
		{"2 1/2 '' DANCING SHOOTER (1 PCS)", "1 BOX", 1200},
	}},
	{"Colour Fountain Big", []seedProduct{
		{"COLOUR RAIN (5 PCS)", "5 BOX", 475},
		{"GOLDEN GLOBE (5 PCS)", "1 BOX", 475},
		{"BUTTERFLY (10 PCS)", "1 BOX", 475},
		{"PHOTO FLASH", "1 BOX", 250},
		{"DISCO SHOWER (5 PCS)", "1 BOX", 425},
		{"MOON LIGHT (5 PCS)", "1 BOX", 375},
	}},
	{"Mega Wonder Fountain (Window)", []seedProduct{
		{"SING POP", "1 BOX", 650},
		{"FOX STAR CRACKLING (1 PCS)", "1 BOX", 500},
		{"MOON LIGHT, HIFI, GOLD STAR (5 PCS)", "1 BOX", 660},
		{"FLY MAGIC FOUNTAIN (6 PCS)", "1 BOX", 625},
		{"TWIX (5 COLOUR FOUNTAIN)", "1 BOX", 650},
		{"TEDDY FOUNTAIN (1 PCS)", "1 BOX", 235},
		{"CRACKLING TIN FOUNTAIN (2 PCS)", "1 BOX", 1050},
	}},
	{"Colour Smoke", []seedProduct{
		{"RAINBOW COLOUR SMOKE (3 PCS)", "1 BOX", 630},
	}},
	{"Gujarat Flower Pots", []seedProduct{
		{"TIM TIM (5 PCS)", "1 BOX", 875},
		{"KO KO (5 PCS)", "1 BOX", 900},
		{"2 IN 1 (10 PCS)", "1 BOX", 1750},
		{"COLOUR CHANGING (5 PCS)", "1 BOX", 1700},
	}},
	{"Naatu Vedi", []seedProduct{
		{"1/4 JOKER PAPER BOMB (1 PCS)", "1 BOX", 225},
		{"1/2 KG PAPER BOMB(1 PCS)", "1 BOX", 450},
		{"1 KG PAPER BOMB (1 PCS)", "1 BOX", 900},
		{"MONEY BANK (3PCS)", "1 BOX", 500},
	}},
	{"Matches Boxs", []seedProduct{
		{"FLASH MATCHES (5 PCS)", "1 BOX", 225},
		{"WONDER MATCHES(10 PCS)", "1 BOX", 275},
		{"POKE MAN MATCHES", "1 BOX", 650},
		{"MEGA DELUXE LAPTOP (10 PCS)", "1 BOX", 850},
	}},
	{"Gun", []seedProduct{
		{"SONY GUN SMALL", "1 BOX", 250},
		{"SONY GUN BIG", "1 PCS", 350},
		{"RING CAB", "1 BOX", 50},
		{"ROLL CAP GUN SMALL", "1 BOX", 250},
		{"ROLL CAB", "1 BOX", 400},
	}},
	{"Twinkling Star", []seedProduct{
		{"1 1/2' TWINKLING STAR", "1 BOX", 125},
		{"4' TWINKLING STAR", "1 BOX", 275},
	}},
	{"New Fancy", []seedProduct{
		{"2 1/2 ' AERIAL FANCY (1 PCS)", "1 BOX", 500},
	}},
	{"Setout", []seedProduct{
		{"T -20 (BHARAT RATHNA)", "1 BOX", 12500},
		{"10 * 10 SHOT CELEBRATION", "1 BOX", 18000},
	}},
	{"Spinner", []seedProduct{
		{"BAMBARAM (10 PCS)", "1 BOX", 475},
		{"HELICOPTOR (5 PCS)", "1 BOX", 375},
		{"DRONE (5 PCS)", "1 BOX", 650},
	}},
	{"New Varieties 2025", []seedProduct{
		{"SIREN (3 PCS)", "1 BOX", 725},
		{"SELFI STICK (5 PCS)", "1 BOX", 500},
		{"LOLLIPOP (5 PCS)", "1 BOX", 750},
		{"GUITAR (1 PCS)", "1 BOX", 1050},
		{"CYCLINDER BOMB (1 PCS)", "1 PCS", 1000},
		{"CAR (1 PCS)", "1 BOX", 800},
		{"APPLE, ORANGE, PINEAPPLE, STRAWBERRY, PUMPKIN (1 PCS)", "1 BOX", 1000},
	}},
	{"Family Pack", []seedProduct{
		{"3000 FAMILY PACK", "1 BOX", 17500},
		{"5000 FAMILY PACK", "1 BOX", 27500},
	}},
	{"G (Other)", []seedProduct{
		{"1 G (OTHER)", "1 BOX", 625},
		{"2 G (OTHER)", "1 BOX", 1250},
		{"5 G (OTHER)", "1 BOX", 3125},
	}},
	{"G (Brand)", []seedProduct{
		{"5 G (BRAND)", "1 BOX", 6250},
	}},
	{"Crackling Fountain", []seedProduct{
		{"STAR SHOW CRACKLING, POP FUN, GREEN CITY, RED MELA (1 PCS)", "1 BOX", 650},
	}},
	{"Gift Box 2025", []seedProduct{
		{"20 ITEM GIFT BOX", "1 BOX", 1250},
		{"25 ITEM GIFT BOX", "1 BOX", 1750},
		{"30 ITEM GIFT BOX", "1 BOX", 2250},
		{"35 ITEM GIFT BOX", "1 BOX", 2750},
	}},
}
