package catalog

// Group maps synonym keywords to one canonical item label. Keywords are
// matched by substring containment after normalization, so singular forms
// also catch plurals ("arma" matches "armas").
type Group struct {
	Keywords []string
	Item     string
	Detail   string // reason for prohibited groups, requirement for restricted ones
}

// prohibitedGroups are items that can never be shipped. Order is the order
// matches are reported in.
var prohibitedGroups = []Group{
	{Keywords: []string{"arma", "pistola", "rifle", "escopeta", "municion", "bala"}, Item: "Armas y municiones", Detail: "Prohibido por ley"},
	{Keywords: []string{"droga", "marihuana", "cocaina", "heroina", "metanfetamina", "cannabis"}, Item: "Drogas y sustancias controladas", Detail: "Ilegal"},
	{Keywords: []string{"polvora", "explosivo", "dinamita", "petardo", "cohete", "fuego artificial", "pirotecnia", "bomba"}, Item: "Explosivos y materiales inflamables", Detail: "Peligroso"},
	{Keywords: []string{"gasolina", "diesel", "combustible", "inflamable", "gas propano", "butano"}, Item: "Materiales inflamables", Detail: "Peligroso"},
	{Keywords: []string{"dinero", "efectivo", "billetes", "dolares en efectivo", "cash"}, Item: "Dinero en efectivo", Detail: "Regulaciones bancarias"},
	{Keywords: []string{"animal vivo", "mascota", "perro", "gato", "pajaro", "reptil", "insecto vivo"}, Item: "Animales vivos", Detail: "Requiere permisos especiales"},
	{Keywords: []string{"planta viva", "semilla", "tierra", "abono organico"}, Item: "Plantas y semillas", Detail: "Regulaciones fitosanitarias"},
	{Keywords: []string{"carne fresca", "pescado fresco", "marisco", "lacteo", "perecedero"}, Item: "Productos perecederos", Detail: "Riesgo de deterioro"},
	{Keywords: []string{"radioactivo", "nuclear", "uranio"}, Item: "Materiales radioactivos", Detail: "Peligroso"},
	{Keywords: []string{"falsificado", "pirata", "replica", "imitacion", "clon"}, Item: "Artículos falsificados", Detail: "Ilegal"},
	{Keywords: []string{"pornografia", "contenido adulto"}, Item: "Material prohibido", Detail: "Prohibido"},
	{Keywords: []string{"cuchillo", "navaja", "machete", "espada", "daga"}, Item: "Armas blancas", Detail: "Prohibido por ley"},
}

// restrictedGroups are items that can ship only with documentation.
var restrictedGroups = []Group{
	{Keywords: []string{"medicamento", "medicina", "pastilla", "farmaco", "antibiotico", "controlado"}, Item: "Medicamentos", Detail: "receta médica válida"},
	{Keywords: []string{"suplemento", "proteina", "vitamina"}, Item: "Suplementos", Detail: "factura y etiqueta original"},
	{Keywords: []string{"perfume", "colonia", "fragancia"}, Item: "Perfumes", Detail: "máximo 3 unidades"},
	{Keywords: []string{"bateria", "pila de litio", "powerbank"}, Item: "Baterías de litio", Detail: "deben ir dentro del dispositivo"},
	{Keywords: []string{"liquido", "aceite", "shampoo", "crema"}, Item: "Líquidos", Detail: "máximo 500ml por envase, sellado"},
	{Keywords: []string{"alcohol", "vino", "cerveza", "licor", "whisky", "ron"}, Item: "Bebidas alcohólicas", Detail: "límite de 3 botellas, selladas"},
}
