package content

import (
	"fmt"

	"github.com/verboapp/verbo/internal/catalog"
)

// chapterPrompt builds the generation prompt for a chapter of the given
// catalog. Each catalog carries its own editorial framing; scripture is a
// straight text request, library works ask for faithful renderings or study
// summaries in the author's register.
func chapterPrompt(id catalog.ID, book string, chapter int, version string) string {
	switch id {
	case catalog.Apocrypha:
		return fmt.Sprintf(
			"Gere o texto completo do livro apócrifo de %s, capítulo %d em português. "+
				"Retorne APENAS um JSON válido.", book, chapter)
	case catalog.White:
		return fmt.Sprintf(
			"Gere o conteúdo do livro de Ellen G. White: %q, capítulo ou seção número %d. "+
				"Se o livro não tiver capítulos numerados dessa forma, gere o texto da %dª seção principal. "+
				"Mantenha a fidelidade aos escritos originais traduzidos para português. "+
				"Retorne APENAS um JSON válido no formato de versículos (parágrafos como versos).",
			book, chapter, chapter)
	case catalog.Silva:
		return fmt.Sprintf(
			"Gere um resumo detalhado e educativo ou o conteúdo do livro do Dr. Rodrigo Silva: %q, capítulo %d. "+
				"Foque em arqueologia bíblica e contexto histórico. "+
				"Retorne APENAS um JSON válido no formato de versículos (tópicos como versos).",
			book, chapter)
	case catalog.Borges:
		return fmt.Sprintf(
			"Gere o conteúdo ou resumo detalhado do livro de Michelson Borges: %q, capítulo %d. "+
				"Foque em criacionismo e apologética. Retorne JSON no formato de versículos.",
			book, chapter)
	case catalog.Bunyan:
		return fmt.Sprintf(
			"Gere o texto do clássico cristão de John Bunyan: %q, capítulo/seção %d. "+
				"O estilo deve ser alegórico e devocional clássico. "+
				"Retorne JSON no formato de versículos.", book, chapter)
	case catalog.Ferguson:
		return fmt.Sprintf(
			"Gere o texto de estudo teológico de Sinclair Ferguson: %q, capítulo %d. "+
				"Foque na Pneumatologia e Teologia Reformada. "+
				"Retorne JSON no formato de versículos.", book, chapter)
	case catalog.Finney:
		return fmt.Sprintf(
			"Gere o texto teológico de Charles Finney: %q, capítulo %d. "+
				"Foque em avivamento e teologia sistemática. "+
				"Retorne JSON no formato de versículos.", book, chapter)
	default:
		return fmt.Sprintf(
			"Gere o texto bíblico completo para o livro de %s, capítulo %d na versão %s (português). "+
				"Retorne APENAS um JSON válido.", book, chapter, versionName(version))
	}
}

func searchPrompt(query, version string) string {
	return fmt.Sprintf(
		"Atue como uma concordância bíblica avançada. Encontre versículos bíblicos relevantes para a busca: %q. "+
			"Use a versão %s (português). "+
			"Retorne os 10-15 resultados mais relevantes em JSON. "+
			"Para cada resultado, inclua o nome exato do livro, capítulo, versículo e o texto.",
		query, versionName(version))
}

func definitionPrompt(term string) string {
	return fmt.Sprintf(
		"Você é um dicionário bíblico especializado na teologia Adventista do Sétimo Dia. Forneça uma definição para: %q.\n\n"+
			"Diretrizes:\n"+
			"1. Baseie a explicação na Bíblia Sagrada.\n"+
			"2. Incorpore a visão teológica das 28 Crenças Fundamentais da IASD quando aplicável.\n"+
			"3. Você pode mencionar insights de Ellen G. White ou do Comentário Bíblico Adventista, identificando-os claramente.\n"+
			"4. Mantenha a resposta concisa (máximo de 3 parágrafos) e use formatação Markdown suave.",
		term)
}

func reflectionPrompt(theme string) string {
	themePart := "inspirador aleatório com foco em esperança e fé"
	if theme != "" {
		themePart = fmt.Sprintf(
			"sobre o tema %q. A reflexão deve ser uma mensagem motivacional e espiritual "+
				"focada em ajudar alguém passando por isso ou buscando isso", theme)
	}
	return fmt.Sprintf(
		"Selecione um versículo bíblico %s na versão Almeida (ARA de preferência). "+
			"Escreva uma reflexão devocional curta (3-4 frases) alinhada à fé Adventista do Sétimo Dia. "+
			"Se o tema for algo como \"Ansiedade\" ou \"Tristeza\", seja acolhedor e consolador. "+
			"Se for \"Motivação\", seja encorajador. Retorne em JSON.", themePart)
}

const assistantSystemInstruction = `Você é um assistente bíblico Adventista do Sétimo Dia experiente e amigável.

Diretrizes Fundamentais:
1. **Bíblia como Regra de Fé:** Sua base primária é a Bíblia Sagrada (Sola Scriptura).
2. **Harmonia com Crenças IASD:** Suas respostas devem estar em harmonia com as 28 Crenças Fundamentais.
3. **Conciso:** Responda de forma direta, mas completa.`

func syllabusPrompt(topic string) string {
	return fmt.Sprintf(
		"Crie um currículo sistemático de 5 módulos para um curso bíblico adventista sobre: %q. "+
			"Retorne apenas JSON.", topic)
}

func lessonPrompt(topic, moduleTitle string) string {
	return fmt.Sprintf(
		"Atue como um Professor Doutor em Teologia e Arqueologia Bíblica. "+
			"Crie o conteúdo completo de uma aula para o módulo: %q.\n\n"+
			"Contexto do Curso: %q.\n\n"+
			"Diretrizes da Aula:\n"+
			"1. **Profundidade Acadêmica:** Use termos técnicos (exegese, hermenêutica) quando necessário, explicando-os.\n"+
			"2. **Idiomas Originais:** Cite palavras-chave em Hebraico ou Grego com seus significados originais.\n"+
			"3. **Fundamentação Bíblica:** Use múltiplas referências bíblicas.\n"+
			"4. **Estrutura Didática:** Divida em: Introdução, Desenvolvimento (3 tópicos principais), Aplicação Prática e Conclusão.\n"+
			"5. **Referências:** Se aplicável ao contexto Adventista, cite Ellen G. White.\n\n"+
			"Formate a resposta em Markdown rico (negrito, itálico, listas, citações).",
		moduleTitle, topic)
}

const maxLessonExcerpt = 8000

func courseQuizPrompt(lesson string) string {
	if len(lesson) > maxLessonExcerpt {
		lesson = lesson[:maxLessonExcerpt]
	}
	return fmt.Sprintf(
		"Com base no seguinte conteúdo de aula teológica, crie 5 perguntas de múltipla escolha de nível acadêmico/universitário. "+
			"As perguntas devem testar a compreensão profunda, não apenas memorização.\n\n"+
			"Conteúdo da Aula: %s\n\n"+
			"Retorne JSON válido com 5 questões.", lesson)
}

func quizPrompt(d Difficulty) string {
	return fmt.Sprintf(
		"Gere uma pergunta de Quiz Bíblico de dificuldade %s. "+
			"Foque em fatos, doutrinas, profecias ou histórias bíblicas. "+
			"Retorne JSON. Inclua o campo \"reference\" com o livro/capítulo onde a resposta se encontra.", d)
}
