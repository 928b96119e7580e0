package validators

import (
	"bytes"
	"mime/multipart"
	"path/filepath"
	"strings"
)

var pdfMagic = []byte("%PDF")

// ValidatePDF checa extensão, content-type declarado e os bytes
// iniciais do arquivo. Devolve o conteúdo já lido até a assinatura.
func ValidatePDF(header *multipart.FileHeader) (ok bool, reason string) {
	if header == nil || header.Filename == "" {
		return false, "Nenhum arquivo selecionado."
	}

	if !strings.EqualFold(filepath.Ext(header.Filename), ".pdf") {
		return false, "Apenas arquivos PDF são aceitos."
	}

	if ct := header.Header.Get("Content-Type"); ct != "" && ct != "application/pdf" {
		return false, "Tipo de arquivo inválido. Apenas PDF."
	}

	f, err := header.Open()
	if err != nil {
		return false, "Não foi possível ler o arquivo."
	}
	defer f.Close()

	head := make([]byte, len(pdfMagic))
	if _, err := f.Read(head); err != nil || !bytes.Equal(head, pdfMagic) {
		return false, "O arquivo não é um PDF válido."
	}

	return true, ""
}
