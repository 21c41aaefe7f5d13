// Copyright 2026 The econometria-libro Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scaffold

import "fmt"

// A Chapter is one chapter of the book.
type Chapter struct {
	Num         int
	Slug        string
	Title       string
	Description string
}

// Dir returns the chapter's directory name, for example
// "capitulo02_estadistica_basica".
func (c Chapter) Dir() string {
	return fmt.Sprintf("capitulo%02d_%s", c.Num, c.Slug)
}

// Chapters lists the chapters of the book in order.
var Chapters = []Chapter{
	{1, "introduccion", "Introducción a la Econometría", "Naturaleza, objetivos y metodología de la econometría"},
	{2, "estadistica_basica", "Estadística Básica y Probabilidad", "Fundamentos estadísticos para econometría"},
	{3, "algebra_matricial", "Álgebra Matricial para Econometría", "Operaciones matriciales, descomposiciones y proyecciones"},
	{4, "regresion_simple", "Modelo de Regresión Lineal Simple", "MCO, supuestos clásicos y propiedades del estimador"},
	{5, "regresion_multiple", "Modelo de Regresión Lineal Múltiple", "Extensión a múltiples variables explicativas"},
	{6, "inferencia", "Inferencia Estadística en Regresión", "Pruebas de hipótesis, intervalos de confianza y predicción"},
	{7, "multicolinealidad", "Multicolinealidad", "Detección, consecuencias y soluciones"},
	{8, "heterocedasticidad", "Heterocedasticidad", "Detección, consecuencias y estimadores robustos"},
	{9, "autocorrelacion", "Autocorrelación", "Detección, consecuencias y métodos de corrección"},
	{10, "variables_instrumentales", "Variables Instrumentales", "Endogeneidad y estimación por VI y 2SLS"},
	{11, "modelos_panel", "Modelos de Datos Panel", "Efectos fijos, efectos aleatorios y pruebas de especificación"},
	{12, "series_temporales", "Introducción a Series Temporales", "Estacionariedad, ACF, PACF y modelos ARIMA"},
	{13, "modelos_var", "Modelos VAR y Causalidad", "Vectores autorregresivos y causalidad de Granger"},
	{14, "cointegracion", "Cointegración y Corrección de Errores", "Relaciones de largo plazo y modelos ECM"},
	{15, "modelos_no_lineales", "Modelos No Lineales", "Especificación, estimación y pruebas de no linealidad"},
	{16, "variables_limitadas", "Variables Dependientes Limitadas", "Modelos Probit, Logit, Tobit y de conteo"},
	{17, "gmm", "Método Generalizado de Momentos", "Teoría y aplicaciones del GMM"},
	{18, "maxima_verosimilitud", "Estimación por Máxima Verosimilitud", "Principios, propiedades y pruebas de hipótesis"},
}
