package pricing

// LACoverageCities are the pickup cities covered in the Los Angeles area.
var LACoverageCities = []string{
	"Los Angeles",
	"Long Beach",
	"Santa Ana",
	"Anaheim",
	"Irvine",
	"Glendale",
	"Huntington Beach",
	"Santa Clarita",
	"Garden Grove",
	"Oceanside",
	"Rancho Cucamonga",
	"Ontario",
	"Fontana",
	"Moreno Valley",
	"San Bernardino",
	"Riverside",
	"Corona",
	"Pomona",
	"Pasadena",
	"Torrance",
	"Downey",
	"West Covina",
	"Norwalk",
	"El Monte",
	"Inglewood",
	"Burbank",
	"Compton",
	"Carson",
	"Costa Mesa",
	"Mission Viejo",
}

// SVDeliveryCities are the delivery cities covered in El Salvador.
var SVDeliveryCities = []string{
	"San Salvador",
	"Santa Ana",
	"San Miguel",
	"Soyapango",
	"Santa Tecla",
	"Mejicanos",
	"Apopa",
	"Delgado",
	"Ilopango",
	"Tonacatepeque",
	"San Marcos",
	"Antiguo Cuscatlán",
	"Chalchuapa",
	"Ahuachapán",
	"Usulután",
	"Sonsonate",
	"Cojutepeque",
	"Zacatecoluca",
	"San Vicente",
	"La Unión",
}

// ListedItem is a published catalog entry with the reason it cannot be
// shipped or the documentation it requires.
type ListedItem struct {
	Item   string
	Detail string
}

// ProhibitedItems is the published list of items that cannot be shipped.
var ProhibitedItems = []ListedItem{
	{Item: "Armas de fuego y municiones", Detail: "Prohibido por ley"},
	{Item: "Drogas y sustancias controladas", Detail: "Ilegal"},
	{Item: "Explosivos y materiales inflamables", Detail: "Peligroso"},
	{Item: "Dinero en efectivo", Detail: "Regulaciones bancarias"},
	{Item: "Animales vivos", Detail: "Requiere permisos especiales"},
	{Item: "Plantas y semillas", Detail: "Regulaciones fitosanitarias"},
	{Item: "Productos perecederos sin refrigeración", Detail: "Riesgo de deterioro"},
	{Item: "Materiales radioactivos", Detail: "Peligroso"},
	{Item: "Artículos falsificados", Detail: "Ilegal"},
	{Item: "Pornografía", Detail: "Prohibido"},
}

// RestrictedItems is the published list of items that need documentation.
var RestrictedItems = []ListedItem{
	{Item: "Medicamentos con receta", Detail: "Receta médica válida"},
	{Item: "Suplementos alimenticios", Detail: "Factura y registro sanitario"},
	{Item: "Electrónicos nuevos (valor > $200)", Detail: "Factura original"},
	{Item: "Perfumes y cosméticos", Detail: "Límite de 3 unidades por tipo"},
	{Item: "Alimentos empacados", Detail: "Etiqueta con ingredientes"},
	{Item: "Baterías de litio", Detail: "Deben ir dentro del dispositivo"},
	{Item: "Líquidos", Detail: "Máximo 500ml por envase, sellado"},
}

// AllowedItems are common items customers can ship without paperwork.
var AllowedItems = []string{
	"Ropa y calzado",
	"Electrónicos (celulares, tablets, laptops)",
	"Accesorios y joyería de fantasía",
	"Juguetes",
	"Libros y revistas",
	"Artículos para el hogar",
	"Herramientas manuales",
	"Productos de belleza (cantidades personales)",
	"Vitaminas y suplementos (uso personal)",
	"Repuestos de vehículos (pequeños)",
	"Artículos deportivos",
	"Instrumentos musicales pequeños",
}

// CustomsLinks holds the customs reference URLs shown to customers.
var CustomsLinks = map[string]string{
	"usa":        "https://www.cbp.gov/travel/international-visitors/know-before-you-go",
	"elsalvador": "https://www.aduana.gob.sv/",
}
