package augment

import "fmt"

// The prompts mirror the gallery's editorial voice: Indonesian, aimed at
// Nusantara manuscript heritage.

func autofillPrompt(title string) string {
	return fmt.Sprintf(`Berdasarkan judul manuskrip kuno Nusantara %q, tolong isi data berikut dalam format JSON. Berikan tebakan terbaikmu jika tidak yakin.
- author: (Pengarang atau penyalin yang mungkin terkait)
- description: (Deskripsi singkat 2-3 kalimat tentang kemungkinan isi manuskrip)
- category: (Contoh: Babad, Sejarah, Sastra, Keagamaan, Primbon)
- language: (Contoh: Jawa Kuno, Sansekerta, Melayu Kuno)
- script: (Contoh: Kawi, Pallawa, Arab-Melayu, Hanacaraka)
- condition: (Contoh: Baik, Rapuh, Ada bagian yang hilang)
- readability: (Contoh: Jelas, Sulit dibaca, Memudar)

Hanya kembalikan objek JSON, tanpa teks atau markdown tambahan.`, title)
}

func descriptionPrompt(title, keywords string) string {
	hint := ""
	if keywords != "" {
		hint = fmt.Sprintf(" Manuskrip ini berkaitan dengan kata kunci: %s.", keywords)
	}
	return fmt.Sprintf(`Buatkan deskripsi singkat dan menarik untuk sebuah manuskrip kuno berjudul %q.%s Deskripsi harus dalam bahasa Indonesia, sekitar 50-100 kata, dan menonjolkan keunikan atau nilai penting manuskrip tersebut.`, title, hint)
}

func postIdeasPrompt(topic string) string {
	focus := "Topik bisa beragam, mulai dari sejarah manuskrip, proses konservasi, hingga cerita menarik di balik koleksi."
	if topic != "" {
		focus = fmt.Sprintf("Fokus pada topik: %q.", topic)
	}
	return fmt.Sprintf(`Berikan 5 ide judul artikel blog yang menarik dan relevan untuk Galeri Manuskrip Sampurnan. %s Hasilnya harus berupa daftar judul dalam bahasa Indonesia. Format output sebagai JSON array string. Contoh: ["Ide Judul 1", "Ide Judul 2"]`, focus)
}

func summarizePrompt(text string) string {
	return fmt.Sprintf("Ringkas teks berikut dalam 2-3 kalimat dalam bahasa Indonesia:\n\n%q", text)
}

func searchPrompt(query string) string {
	return fmt.Sprintf(`Jawab pertanyaan berikut berdasarkan informasi terbaru dari Google Search: %q. Sertakan sumber jika memungkinkan. Jawaban dalam Bahasa Indonesia.`, query)
}
