package roster

import "github.com/jkorhonen/rinkroster/internal/model"

type defaultPlayer struct {
	name     string
	number   int
	position model.Position
}

// defaultRoster is the built-in team seeded on first load: two goalies and
// twenty field players, enough to fill the ready list with spares.
var defaultRoster = []defaultPlayer{
	{"Mikko Aaltonen", 7, model.PositionForward},
	{"Juha Peltonen", 10, model.PositionForward},
	{"Sami Virtanen", 5, model.PositionDefender},
	{"Antti Korpela", 1, model.PositionGoalie},
	{"Ville Salmi", 15, model.PositionForward},
	{"Teemu Lahtinen", 8, model.PositionDefender},
	{"Jari Makela", 12, model.PositionForward},
	{"Olli Rantanen", 3, model.PositionDefender},
	{"Petri Koskinen", 9, model.PositionForward},
	{"Lauri Heikkila", 2, model.PositionDefender},
	{"Niko Jarvinen", 20, model.PositionForward},
	{"Timo Nieminen", 4, model.PositionDefender},
	{"Pekka Laine", 11, model.PositionForward},
	{"Esa Hamalainen", 6, model.PositionDefender},
	{"Marko Savolainen", 13, model.PositionForward},
	{"Janne Tuominen", 14, model.PositionForward},
	{"Kari Leinonen", 16, model.PositionForward},
	{"Risto Kinnunen", 17, model.PositionDefender},
	{"Aki Turunen", 18, model.PositionForward},
	{"Tomi Karjalainen", 19, model.PositionForward},
	{"Harri Mustonen", 21, model.PositionDefender},
	{"Joonas Ahonen", 22, model.PositionGoalie},
}
