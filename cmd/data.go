package main

import (
	"errors"
	"fmt"

	"github.com/minedu-grd/encuesta-cli/internal/dataset"
	"github.com/minedu-grd/encuesta-cli/internal/report"
	"github.com/minedu-grd/encuesta-cli/internal/survey"
)

var sourceFlag string

// newBuilder applies flag overrides and returns a report builder.
func newBuilder() *report.Builder {
	if sourceFlag != "" {
		cfg.Source.Path = sourceFlag
	}
	return report.NewBuilder(cfg)
}

// userMessage translates the core's error kinds into the user-correctable
// messages the dashboard shows, instead of stack traces. Returns ok=false
// for unexpected errors that should propagate as-is.
func userMessage(err error) (string, bool) {
	switch {
	case errors.Is(err, dataset.ErrSourceNotFound):
		return fmt.Sprintf("No encuentro el archivo de datos: %s. Verifica la ruta en la configuración.", cfg.Source.Path), true
	case errors.Is(err, dataset.ErrUnsupportedFormat):
		return "Formato de archivo no soportado. Usa un archivo .xlsx o .csv.", true
	case errors.Is(err, dataset.ErrMalformedSource):
		return "El archivo no se pudo leer como datos tabulares. Verifica que no esté corrupto.", true
	case errors.Is(err, dataset.ErrMissingColumn):
		return fmt.Sprintf("Falta una columna obligatoria en el archivo. Verifica los encabezados. (%s)", err), true
	case errors.Is(err, survey.ErrEmptyFilterResult):
		return "No hay datos para la combinación seleccionada de filtros.", true
	case errors.Is(err, survey.ErrNoQuestions):
		return "Selecciona al menos una pregunta para ver resultados.", true
	}
	return "", false
}

// reportUserError prints the user message for known terminal states and
// reports whether the error was handled. Handled errors end the render pass
// cleanly; the process stays usable for the next invocation.
func reportUserError(err error) bool {
	if err == nil {
		return false
	}
	msg, ok := userMessage(err)
	if !ok {
		return false
	}
	fmt.Println(msg)
	return true
}
