// Package fuzztests houses Go fuzz harnesses for the Quill front end
// (source -> lexer -> parser -> sema). The goal is to smoke test robustness:
// no panics, no hangs, spans that stay inside the input.
//
// Назначение: прогонять произвольные байты через FileSet, лексер, парсер и
// проверку типов. Вычисление не фаззится: повторение строк умеет выделять
// сотни мегабайт.
package fuzztests
