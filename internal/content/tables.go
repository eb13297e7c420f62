package content

// Static report content. The wording is the product copy shipped with the
// questionnaire; it is loaded once and never mutated at runtime.

// CategoryOrder is the fixed rendering order of the 11 categories.
var CategoryOrder = []string{"DST", "STR", "MAC", "KON", "MOR", "IND", "AKT", "INF", "COM", "AUF", "STA"}

var categories = map[string]Category{
	"DST": {
		ID:       "DST",
		Name:     "Leistungsmodus unter Belastung",
		What:     "Wie du unter Belastung funktionierst: Druck aktiviert dich – oder frisst Zugriff.",
		Title:    "LEISTUNGSMODUS UNTER BELASTUNG",
		Intro: []string{
			"Diese Funktion entscheidet nicht, wie leistungsfähig du sein könntest –",
			"sondern ob du Leistung abrufst, wenn es wirklich zählt.",
			"",
			"Zeitdruck.",
			"Erwartung.",
			"Bewertung.",
			"Risiko.",
			"",
			"Genau dort trennt sich Vorbereitung von Performance.",
			"",
			"Der Leistungsmodus unter Belastung beschreibt, wie dein System reagiert,",
			"wenn die äußeren Bedingungen enger werden –",
			"und ob du dann klarer wirst oder enger.",
			"",
			"Nicht im Training.",
			"Nicht im Kopf.",
			"Sondern im Moment der Entscheidung.",
		},
		High: []string{
			"Druck aktiviert dich.",
			"Er macht dich klarer, nicht hektischer.",
			"Du bleibst handlungsfähig, während andere anfangen zu zweifeln.",
			"",
			"Typische Wirkung bei hoher Ausprägung:",
			"• Du priorisierst schneller",
			"• Du triffst Entscheidungen auch ohne vollständige Sicherheit",
			"• Du hältst Fokus, während andere Tempo verlieren",
			"• Du kannst Leistung nicht nur vorbereiten, sondern abrufen",
			"",
			"Das ist ein echter Peak-Hebel.",
			"Denn genau hier entstehen Führung, Dominanz und Verlässlichkeit.",
			"",
			"Wichtig:",
			"Diese Stärke wirkt nicht automatisch –",
			"sie wirkt dann maximal, wenn du Druck bewusst dosierst",
			"und nicht permanent im Hochlastmodus bleibst.",
		},
		Mid: []string{
			"Leistung ist unter Druck möglich, aber nicht stabil.",
			"Manche Situationen pushen – andere überfahren.",
			"",
			"Typisch:",
			"• Zu viel gleichzeitig",
			"• Tempoverlust bei Unklarheit",
			"• Wechsel zwischen Aktionismus und Blockade",
			"",
			"Der Schlüssel hier ist nicht mehr Disziplin,",
			"sondern bessere Drucksteuerung.",
		},
		Low: []string{
			"Steigender Druck senkt den Zugriff.",
			"Entscheidungen werden schwerer, nicht klarer.",
			"Leistung wird inkonsistent – genau dann, wenn sie gebraucht wird.",
			"",
			"Nicht, weil Kompetenz fehlt.",
			"Sondern weil das System Schutz sucht, statt Output zu liefern.",
		},
		Practice: []string{
			"Vor Belastung: Maximal 1–3 klare Prioritäten festlegen – nie mehr. Druck braucht Richtung, keine To-do-Wolke.",
			"Nach Belastung: Kurzer Reset als Standard (Bewegung, Atmung, Wasser – kein Scrollen, kein Grübeln).",
			"Im Druck: Fokus auf die nächste saubere Aktion, nicht auf das „große Ganze“.",
		},
		Mnemonic: "Leistung unter Druck ist kein Talent. Sie ist das Ergebnis von klarer Priorisierung, bewusster Steuerung und der Fähigkeit, im Moment zu entscheiden.",
		SummaryHigh: "Unter Druck bleibst du handlungsfähig, priorisierst klar und kannst Leistung abrufen, wenn es zählt.",
		SummaryLow:  "Wenn Druck steigt, sinkt Zugriff/Fokus schneller. Risiko: Blockade, Vermeidung, inkonsistente Leistung in Peak-Momenten.",
		SteerLine:   "Steuerung: Druck dosieren, klare Peak-Fenster definieren, Erholung als festen Bestandteil planen.",
	},
	"STR": {
		ID:       "STR",
		Name:     "Entscheidungsstabilität & Ordnung",
		What:     "Wie sehr Struktur deine Performance stabilisiert.",
		Title:    "ENTSCHEIDUNGSSTABILITÄT & ORDNUNG",
		Intro: []string{
			"Diese Funktion entscheidet nicht, ob du intelligent bist –",
			"sondern ob du in Unruhe sauber entscheiden kannst.",
			"",
			"Unklarheit.",
			"zu viele Baustellen.",
			"wechselnde Prioritäten.",
			"",
			"Hier verlieren viele nicht wegen fehlender Kompetenz –",
			"sondern weil ihnen ein System fehlt.",
			"",
			"Entscheidungsstabilität & Ordnung beschreibt,",
			"ob Struktur dich stabilisiert –",
			"oder ob Chaos dir unbemerkt Leistung abzieht.",
		},
		High: []string{
			"Struktur beruhigt dich nicht nur – sie macht dich gefährlich effizient.",
			"Du bleibst klar, weil du Ordnung in Entscheidungen bringst.",
			"",
			"Typische Wirkung bei hoher Ausprägung:",
			"• Du priorisierst sauber statt hektisch",
			"• Du triffst Entscheidungen nach Standards – nicht nach Stimmung",
			"• Du arbeitest stabil, auch wenn außen Lärm ist",
			"• Du verlierst wenig Energie an Chaos",
			"",
			"Das ist ein Elite-Hebel.",
			"Denn Struktur ist nicht „Organisation“ –",
			"Struktur ist Zugriff.",
		},
		Mid: []string{
			"Du kannst strukturiert sein – aber nicht konstant.",
			"Manchmal läuft es über Standards.",
			"Manchmal frisst dich Unordnung.",
			"",
			"Typisch:",
			"• Du startest stark – verlierst aber Richtung",
			"• Du wechselst zu oft die Priorität",
			"• Du bist im Kopf organisiert – aber nicht im System",
			"",
			"Der Schlüssel ist nicht mehr Druck,",
			"sondern ein klarer Standard, der täglich greift.",
		},
		Low: []string{
			"Chaos kostet dich unnötig Leistung.",
			"Nicht dramatisch – aber konstant.",
			"",
			"Typisch:",
			"• Entscheidungen dauern zu lange",
			"• Umsetzung beginnt zu spät",
			"• Energie geht in Sortieren statt in Liefern",
			"",
			"Nicht, weil du schwach bist.",
			"Sondern weil du ohne Ordnung zu viel im Kopf tragen musst.",
		},
		Practice: []string{
			"Täglich: 3 Prioritäten. Nicht mehr. Wenn alles wichtig ist, ist nichts klar.",
			"Standards schriftlich: Wer entscheidet was – bis wann? Unklarheit ist Leistungsverlust.",
			"Start- und Abschlussritual: Beginnen mit Fokus, beenden mit Review. Ordnung entsteht nicht zufällig.",
		},
		Mnemonic: "Struktur ist kein Selbstzweck. Sie ist das, was Leistung unter Unruhe stabil macht.",
		SummaryHigh: "Klare Abläufe, Standards und Prioritäten geben dir Ruhe und Konstanz – du bleibst sauber, zuverlässig und stabil.",
		SummaryLow:  "Unklare Zuständigkeiten/chaotische Abläufe kosten Energie, erhöhen Fehlerquote und machen Entscheidungen schwerer.",
		SteerLine:   "Steuerung: Standards + Routinen + klare Zuständigkeiten schriftlich definieren.",
	},
	"MAC": {
		ID:       "MAC",
		Name:     "Verantwortungs- & Einflussorientierung",
		What:     "Wie stark du Verantwortung/Einfluss suchst – und darüber Leistung abrufst.",
		Title:    "VERANTWORTUNGS- & EINFLUSSORIENTIERUNG",
		Intro: []string{
			"Diese Funktion entscheidet nicht, ob du motiviert bist –",
			"sondern ob du Verantwortung nimmst, wenn Richtung fehlt.",
			"",
			"Verantwortung heißt:",
			"nicht warten, bis jemand entscheidet.",
			"sondern die Entscheidung führen.",
			"",
			"Diese Kategorie zeigt,",
			"ob Einfluss dich aktiviert –",
			"oder ob du lieber im Ausführen bleibst.",
		},
		High: []string{
			"Verantwortung setzt Energie frei.",
			"Du willst steuern, gestalten, entscheiden.",
			"",
			"Typische Wirkung bei hoher Ausprägung:",
			"• Du übernimmst Verantwortung statt Ausreden",
			"• Du triffst Entscheidungen, wenn andere noch diskutieren",
			"• Du willst Wirkung – nicht nur Arbeit",
			"• Du hältst Systeme stabil, weil du Verantwortung trägst",
			"",
			"Das ist Leadership in Reinform.",
			"Nicht Position – sondern Verhalten.",
		},
		Mid: []string{
			"Du kannst Verantwortung übernehmen – aber nicht immer automatisch.",
			"Manchmal gehst du voran.",
			"Manchmal wartest du auf Autorität.",
			"",
			"Typisch:",
			"• Du übernimmst, wenn du dich sicher fühlst",
			"• Du zögerst, wenn der Verantwortungsrahmen unklar ist",
			"• Du lässt Entscheidungen liegen, wenn niemand sie dir gibt",
			"",
			"Der Schlüssel ist klare Verantwortungsdefinition –",
			"damit du nicht in Unklarheit hängen bleibst.",
		},
		Low: []string{
			"Verantwortung ist nicht dein Trigger.",
			"Du wartest eher auf Vorgaben oder klare Führung.",
			"",
			"Typisch:",
			"• Du lieferst gut – aber du steuerst wenig",
			"• Entscheidungen bleiben in der Luft",
			"• Einfluss wird verschenkt",
			"",
			"Nicht, weil dir Stärke fehlt.",
			"Sondern weil Verantwortung nicht sauber bei dir landet.",
		},
		Practice: []string{
			"Verantwortungsrahmen definieren: Was ist mein Bereich – und was nicht? Ohne konkreten Rahmen keine klare Verantwortung.",
			"Entscheidungsspielraum festlegen: „Ich entscheide bis X / bis Datum Y“ – sonst wird’s schwammig.",
			"Verantwortung täglich: Eine Sache aktiv abschließen, statt sie „zu parken“.",
		},
		Mnemonic: "Einfluss ist kein Status. Einfluss ist die Fähigkeit, Verantwortung zu führen, bevor es jemand verlangt.",
		SummaryHigh: "Du übernimmst Ownership, entscheidest und steuerst. Das ist ein Leadership-Hebel in Leistungssystemen.",
		SummaryLow:  "Du wartest eher auf Vorgaben: Verantwortung bleibt diffus, Entscheidungen verzögern sich, Ownership sinkt.",
		SteerLine:   "Steuerung: Entscheidungsspielräume definieren, Verantwortung eindeutig zuordnen, Ownership trainieren.",
	},
	"KON": {
		ID:       "KON",
		Name:     "Soziale Steuerung & Anschlussfähigkeit",
		What:     "Wie sehr Leistung durch soziale Rückkopplung beeinflusst wird.",
		Title:    "SOZIALE STEUERUNG & ANSCHLUSSFÄHIGKEIT",
		Intro: []string{
			"Diese Funktion entscheidet nicht, ob du „menschenfreundlich“ bist –",
			"sondern ob Kontakt deine Leistung verstärkt oder verwässert.",
			"",
			"Feedback.",
			"Sparring.",
			"Teamdynamik.",
			"",
			"Hier entsteht entweder Klarheit –",
			"oder Ablenkung.",
			"",
			"Diese Kategorie zeigt,",
			"ob du über Austausch stabiler wirst –",
			"oder ob du in Autonomie am stärksten bist.",
		},
		High: []string{
			"Kontakt ist bei dir kein Smalltalk.",
			"Kontakt ist Performance.",
			"",
			"Typische Wirkung bei hoher Ausprägung:",
			"• Gespräche machen dich klarer",
			"• Feedback stabilisiert deinen Fokus",
			"• Du wirst besser durch Sparring",
			"• Du ziehst Energie aus einem leistungsstarken Umfeld",
			"",
			"Das ist ein starker Hebel –",
			"wenn du ihn bewusst nutzt und nicht jedem Input die Führung gibst.",
		},
		Mid: []string{
			"Du kannst über Austausch wachsen – aber nicht immer.",
			"Manchmal macht Kontakt dich stärker.",
			"Manchmal kostet er dich Fokus.",
			"",
			"Typisch:",
			"• Du holst Feedback, aber zu unstrukturiert",
			"• Du bist offen, aber manchmal zu beeinflusst",
			"• Du wechselst zwischen Rückzug und Over-Contact",
			"",
			"Der Schlüssel ist Kommunikationsdichte bewusst zu steuern –",
			"nicht nach Gefühl.",
		},
		Low: []string{
			"Du bist sehr autonom.",
			"Du brauchst wenig Kontakt, um zu liefern.",
			"",
			"Das kann Stärke sein –",
			"Risiko ist Isolation.",
			"",
			"Typisch:",
			"• Du holst zu wenig Korrektur",
			"• Du bleibst unsichtbar, obwohl du Leistung bringst",
			"• Du trägst zu viel allein im Kopf",
		},
		Practice: []string{
			"Sparring fix: 1 Termin pro Woche, klarer Zweck, klare Fragen – Feedback wird geführt, nicht gesucht.",
			"Input filtern: Nicht jeder Rat ist relevant. Nur Feedback von Menschen mit Standard.",
			"Kontakt dosieren: Austausch als Hebel – nicht als Flucht vor Entscheidung.",
		},
		Mnemonic: "Kontakt ist dann ein Hebel, wenn er Klarheit erzeugt – nicht wenn er deine Entscheidung ersetzt.",
		SummaryHigh: "Austausch/Sparring erhöht deine Klarheit, Leistungsstabilität und Entscheidungsqualität.",
		SummaryLow:  "Ohne Anschluss/Feedback kippt Stabilität schneller: Isolation, weniger Korrektur, weniger Energie/Drive.",
		SteerLine:   "Steuerung: Kommunikationsdichte festlegen (z.B. 1–2 feste Sparring-Slots pro Woche).",
	},
	"MOR": {
		ID:       "MOR",
		Name:     "Werte-Stabilität & innere Entscheidungsgrenzen",
		What:     "Wie stark Werte/Prinzipien deine Entscheidungskraft stabilisieren.",
		Title:    "WERTE-STABILITÄT & INNERE ENTSCHEIDUNGSGRENZEN",
		Intro: []string{
			"Diese Funktion entscheidet nicht, ob du „moralisch“ bist –",
			"sondern ob du unter Druck eine klare innere Linie hast.",
			"",
			"Werte sind keine Worte.",
			"Werte sind Grenzen.",
			"",
			"Diese Kategorie zeigt,",
			"ob du mit Integrität ruhiger wirst –",
			"oder ob innere Konflikte dir Leistung ziehen.",
		},
		High: []string{
			"Du entscheidest klarer, wenn Dinge zu deinen Prinzipien passen.",
			"Du verlierst weniger Energie an innere Diskussion.",
			"",
			"Typische Wirkung bei hoher Ausprägung:",
			"• Du hast eine klare Linie",
			"• Du kannst „Nein“ sagen ohne Drama",
			"• Du bleibst stabil, weil du weißt wofür du stehst",
			"• Integrität macht dich leistungsfähig",
			"",
			"Das ist ein Elite-Vorteil –",
			"weil du unter Druck weniger inneren Lärm hast.",
		},
		Mid: []string{
			"Du hast Werte – aber sie sind nicht immer scharf geführt.",
			"Manchmal bist du klar.",
			"Manchmal bist du zu flexibel.",
			"",
			"Typisch:",
			"• Du passt dich an, auch wenn es dich innerlich kostet",
			"• Du rechtfertigst Entscheidungen zu lange",
			"• Du spürst Unruhe, aber benennst sie nicht",
			"",
			"Der Schlüssel ist Klarheit: Was ist No-Go – und warum?",
		},
		Low: []string{
			"Flexibilität ist hoch – aber Grenzen sind weich.",
			"Das kann Anpassungsfähigkeit sein –",
			"Risiko ist Beliebigkeit.",
			"",
			"Typisch:",
			"• Innere Unruhe bei Entscheidungen",
			"• Du verlierst Energie an Grübeln",
			"• Du driftest, wenn Druck kommt",
		},
		Practice: []string{
			"3 Kernwerte + 3 No-Gos schriftlich. Kurz. Hart. Ohne Poesie.",
			"Konflikte früh benennen: Was passt nicht? Was kostet Leistung?",
			"Entscheidungen sauber machen: weniger Rechtfertigung, mehr Linie.",
		},
		Mnemonic: "Werte sind nicht Deko. Werte sind das, was dich unter Druck stabil hält, wenn alles wackelt.",
		SummaryHigh: "Wenn Entscheidungen zu deinen Werten passen, wirst du ruhiger, klarer und leistungsstärker.",
		SummaryLow:  "Wertekonflikte kosten Leistung: innere Unruhe, Grübeln, inkonsistente Entscheidungen.",
		SteerLine:   "Steuerung: 3 Kernwerte + No-Go-Liste definieren, Konflikte früh benennen.",
	},
	"IND": {
		ID:       "IND",
		Name:     "Autonomie- & Gestaltungsmodus",
		What:     "Wie viel Freiheit du brauchst, um maximal zu liefern.",
		Title:    "AUTONOMIE- & GESTALTUNGSMODUS",
		Intro: []string{
			"Diese Funktion entscheidet nicht, ob du „freiheitsliebend“ bist –",
			"sondern ob Freiheit bei dir Leistung freisetzt oder Fokus frisst.",
			"",
			"Manche liefern mit Struktur.",
			"Andere liefern mit Spielraum.",
			"",
			"Diese Kategorie zeigt,",
			"ob du über Gestaltungsfreiheit besser wirst –",
			"oder ob du über klare Führung stabiler bist.",
		},
		High: []string{
			"Freiheit macht dich nicht chaotisch –",
			"Freiheit macht dich produktiv.",
			"",
			"Typische Wirkung bei hoher Ausprägung:",
			"• Du entwickelst Lösungen statt nur Schritte abzuarbeiten",
			"• Du lieferst besser ohne Micromanagement",
			"• Du denkst in Möglichkeiten und Output",
			"• Du bringst eigene Wege, ohne den Zielrahmen zu verlieren",
			"",
			"Das ist ein starker Hebel –",
			"wenn Ziel und Ergebnis glasklar sind.",
		},
		Mid: []string{
			"Du kannst mit Freiheit umgehen – aber nicht unbegrenzt.",
			"Zu wenig Spielraum bremst dich.",
			"Zu viel Spielraum zerstreut dich.",
			"",
			"Typisch:",
			"• Du brauchst Leitplanken, aber keine Detailsteuerung",
			"• Du performst, wenn Ziele klar sind",
			"• Du verlierst Fokus, wenn niemand ein Ergebnis definiert",
		},
		Low: []string{
			"Du bist systemtreuer.",
			"Du wirst besser, wenn Vorgaben klar sind.",
			"",
			"Risiko:",
			"Wenn niemand führt, wirst du passiver.",
			"Nicht aus Faulheit –",
			"sondern weil dir der Rahmen fehlt, der Zugriff gibt.",
		},
		Practice: []string{
			"Freiheitsgrad definieren: Ziel fix, Weg offen – oder Weg fix, Ziel messbar. Nicht beides offen.",
			"Ergebnis-Kriterien schriftlich: Was ist „fertig“? Was ist „gut“?",
			"Timeboxing: Freiheit braucht Zeitfenster, sonst frisst sie Fokus.",
		},
		Mnemonic: "Autonomie ist dann ein Hebel, wenn sie geführt ist: Ziel klar, Spielraum bewusst.",
		SummaryHigh: "Autonomie erzeugt Performance: du lieferst kreative Lösungen, Eigenständigkeit und hohen Output.",
		SummaryLow:  "Zu enge Vorgaben drücken Leistung: Passivität, Abwarten oder Dienst-nach-Vorschrift statt Impact.",
		SteerLine:   "Steuerung: Ziel klar, Weg offen – aber Outcomes messbar machen.",
	},
	"AKT": {
		ID:       "AKT",
		Name:     "Energie- & Handlungsdynamik",
		What:     "Wie stark Tempo/Umsetzung deine Leistungsfähigkeit treibt.",
		Title:    "ENERGIE- & HANDLUNGSDYNAMIK",
		Intro: []string{
			"Diese Funktion entscheidet nicht, ob du „fleißig“ bist –",
			"sondern ob du Zugriff über Handlung bekommst.",
			"",
			"Manche gewinnen Klarheit durch Denken.",
			"Andere gewinnen Klarheit durch Bewegung.",
			"",
			"Diese Kategorie zeigt,",
			"ob Tempo bei dir Momentum erzeugt –",
			"oder ob du eher über Ruhe stabil bleibst.",
		},
		High: []string{
			"Tempo ist bei dir kein Stress –",
			"Tempo ist dein Zündschlüssel.",
			"",
			"Typische Wirkung bei hoher Ausprägung:",
			"• Du kommst schnell ins Tun",
			"• Du baust Momentum auf",
			"• Du entscheidest oft besser in Bewegung",
			"• Du ziehst Dinge durch, statt sie zu zerdenken",
			"",
			"Das ist ein Performance-Vorteil –",
			"wenn du Push und Brake bewusst steuerst.",
		},
		Mid: []string{
			"Du kannst Tempo machen – aber nicht immer stabil.",
			"Manchmal bist du schnell.",
			"Manchmal bleibst du hängen.",
			"",
			"Typisch:",
			"• Start fällt schwer, wenn die Aufgabe groß wirkt",
			"• Du bist gut im Sprint, aber inkonsistent im Rhythmus",
			"• Du wechselst zwischen Aktionismus und Warten",
		},
		Low: []string{
			"Du bist reflektierter – und oft langsamer im Start.",
			"Das kann Qualität bringen.",
			"",
			"Risiko:",
			"Du kommst zu spät in Umsetzung.",
			"Nicht, weil du nicht kannst –",
			"sondern weil du zu lange im Kopf bleibst.",
		},
		Practice: []string{
			"5-Minuten-Kickstart: kleinster Schritt, sofort. Nicht diskutieren.",
			"Version 1 liefern: Momentum vor Perfektion. Danach schärfen.",
			"Push/Brake setzen: bewusst beschleunigen – bewusst stoppen, bevor es kippt.",
		},
		Mnemonic: "Tempo ist ein Hebel – aber nur, wenn du es führst. Sonst führt es dich.",
		SummaryHigh: "Du erzeugst Momentum: du kommst ins Tun, triffst Entscheidungen über Handlung und ziehst durch.",
		SummaryLow:  "Wenn Dynamik fehlt, startest du zu spät: du bleibst zu lange im Kopf und kommst schwer in Umsetzung.",
		SteerLine:   "Steuerung: Timeboxing, Start-Ritual (5 Minuten), kleine erste Schritte statt Perfektion.",
	},
	"INF": {
		ID:       "INF",
		Name:     "Verarbeitungs- & Entscheidungsmodus",
		What:     "Analyse vs. Intuition: wie du über Verständnis Leistung stabilisierst.",
		Title:    "VERARBEITUNGS- & ENTSCHEIDUNGSMODUS",
		Intro: []string{
			"Diese Funktion entscheidet nicht, ob du rational bist –",
			"sondern wie du Sicherheit für Entscheidungen erzeugst.",
			"",
			"Information kann Klarheit sein.",
			"Oder ein Versteck.",
			"",
			"Diese Kategorie zeigt,",
			"ob du über Verständnis stabil wirst –",
			"oder ob du schneller über Intuition performst.",
		},
		High: []string{
			"Du wirst stabil, wenn du Zusammenhänge siehst.",
			"Du triffst bessere Entscheidungen, wenn die Lage klar ist.",
			"",
			"Typische Wirkung bei hoher Ausprägung:",
			"• Du denkst strukturiert",
			"• Du erkennst Muster",
			"• Du triffst Entscheidungen fundiert",
			"• Du bleibst ruhiger, weil Fakten dir Zugriff geben",
			"",
			"Wichtig:",
			"Der Hebel kippt, wenn Analyse zur Verzögerung wird.",
		},
		Mid: []string{
			"Du brauchst etwas Klarheit – aber nicht alles.",
			"Manchmal analysierst du gut.",
			"Manchmal entscheidest du zu schnell oder zu spät.",
			"",
			"Typisch:",
			"• Du willst Sicherheit, aber verlierst dich gelegentlich",
			"• Du sammelst zu viel, wenn Druck steigt",
			"• Du gehst in Bauchgefühl, wenn Infos fehlen",
		},
		Low: []string{
			"Du bist intuitiver.",
			"Du entscheidest schneller ohne viel Datenlage.",
			"",
			"Das kann mutig und schnell sein –",
			"Risiko sind Fehlgriffe oder blinde Flecken,",
			"wenn Mindest-Klarheit fehlt.",
		},
		Practice: []string{
			"2–3 Pflichtinfos definieren. Nicht 20. Dann entscheiden.",
			"Analyse-Timer: Entscheidung bekommt ein Zeitfenster – sonst wirst du geführt.",
			"Pre-Mortem: „Was wäre der größte Fehler – und wie verhindern wir ihn?“",
		},
		Mnemonic: "Information ist dann Stärke, wenn sie zu Entscheidung führt – nicht wenn sie Entscheidung ersetzt.",
		SummaryHigh: "Du triffst bessere Entscheidungen, wenn du Zusammenhänge siehst – Stabilität über Klarheit.",
		SummaryLow:  "Zu wenig Klarheit führt zu Zögern/Fehlgriffen. Risiko: Bauchgefühl ohne Basis oder Overthinking ohne Abschluss.",
		SteerLine:   "Steuerung: 2–3 Pflichtinfos pro Entscheidung, Info-Dosis bewusst begrenzen.",
	},
	"COM": {
		ID:       "COM",
		Name:     "Vergleichs- & Leistungsreferenz",
		What:     "Wie sehr Vergleich/Wettbewerb dich aktiviert.",
		Title:    "VERGLEICHS- & LEISTUNGSREFERENZ",
		Intro: []string{
			"Diese Funktion entscheidet nicht, ob du ehrgeizig bist –",
			"sondern ob Vergleich dich schärft oder dich steuert.",
			"",
			"Benchmarks können Standards erhöhen.",
			"Oder Fokus zerstören.",
			"",
			"Diese Kategorie zeigt,",
			"wie stark Wettbewerb, Messbarkeit und Referenzen",
			"deinen Leistungsmodus aktivieren.",
		},
		High: []string{
			"Vergleich schärft dich.",
			"Wenn es messbar wird, wirst du wach.",
			"",
			"Typische Wirkung bei hoher Ausprägung:",
			"• Standards steigen, Intensität steigt",
			"• Du gehst in den Leistungsmodus, wenn es zählt",
			"• Du willst messen statt hoffen",
			"• Du lieferst stärker, wenn Rahmen klar ist",
			"",
			"Wichtig:",
			"Vergleich ist ein Werkzeug – kein Boss.",
		},
		Mid: []string{
			"Wettbewerb kann dich pushen – aber nicht konstant.",
			"Manchmal aktiviert er dich.",
			"Manchmal lenkt er dich ab.",
			"",
			"Typisch:",
			"• Du nutzt Benchmarks, aber nicht sauber",
			"• Du wirst phasenweise getrieben",
			"• Du verlierst Fokus, wenn der Vergleich toxisch wird",
		},
		Low: []string{
			"Du bist weniger wettbewerbsgetrieben.",
			"Das kann Stabilität geben.",
			"",
			"Risiko:",
			"Zu wenig externe Reibung.",
			"Standards bleiben weich.",
			"Potenzial wird nicht maximal herausgefordert.",
		},
		Practice: []string{
			"1 Benchmark wählen. Nicht zehn. Klarer Maßstab, klare Richtung.",
			"Vergleich dosieren: Phasenweise – nicht permanent.",
			"Scoreboard für Entwicklung: Fortschritt sichtbar machen, nicht Ego füttern.",
		},
		Mnemonic: "Vergleich ist dann Elite, wenn er Standards erhöht – ohne dich emotional zu steuern.",
		SummaryHigh: "Benchmarks pushen dich: Standards steigen, Intensität steigt, du gehst in den Leistungsmodus.",
		SummaryLow:  "Ohne Vergleich fehlt oft Schärfe: Standards werden weicher, weniger Leistungs-Push von außen.",
		SteerLine:   "Steuerung: Referenzsystem (KPIs/Benchmarks) definieren – Vergleich kontrolliert & konstruktiv.",
	},
	"AUF": {
		ID:       "AUF",
		Name:     "Sichtbarkeits- & Feedbackabhängigkeit",
		What:     "Wie stark Feedback/Sichtbarkeit deine Leistung stabilisiert.",
		Title:    "SICHTBARKEITS- & FEEDBACKABHÄNGIGKEIT",
		Intro: []string{
			"Diese Funktion entscheidet nicht, ob du Aufmerksamkeit magst –",
			"sondern ob Feedback bei dir Zugriff erzeugt oder Druck erzeugt.",
			"",
			"Resonanz kann Leistung stabilisieren.",
			"Oder dich abhängig machen.",
			"",
			"Diese Kategorie zeigt,",
			"wie stark Rückmeldung, Sichtbarkeit und Bewertung",
			"deine Leistung beeinflussen.",
		},
		High: []string{
			"Feedback ist bei dir Treibstoff.",
			"Resonanz aktiviert Einsatzbereitschaft.",
			"",
			"Typische Wirkung bei hoher Ausprägung:",
			"• Du lieferst stärker, wenn Rückmeldung klar ist",
			"• Du ziehst Energie aus Sichtbarkeit",
			"• Du wirst konsequenter, wenn du „gesehen“ wirst",
			"• Du reagierst sensibel auf Bewertung",
			"",
			"Wichtig:",
			"Du musst Feedback führen – sonst führt Feedback dich.",
		},
		Mid: []string{
			"Feedback kann dich pushen – aber du brauchst es nicht immer.",
			"Manchmal ist es nützlich.",
			"Manchmal lenkt es ab.",
			"",
			"Typisch:",
			"• Du holst dir Rückmeldung, aber nicht systematisch",
			"• Du bist robust, aber manchmal getriggert",
			"• Du wirst inkonsistent, wenn Resonanz fehlt",
		},
		Low: []string{
			"Du bist unabhängiger.",
			"Du brauchst wenig Rückmeldung, um zu liefern.",
			"",
			"Das kann Stärke sein –",
			"Risiko ist Unsichtbarkeit.",
			"Du bringst Leistung – aber sie wird nicht abgerufen, weil sie keiner sieht.",
		},
		Practice: []string{
			"Feedbackfrequenz definieren: 1 Review/Woche – aktiv einfordern, nicht hoffen.",
			"Wirkung sichtbar machen: Ergebnisse kurz dokumentieren (sachlich, nicht ego).",
			"Trennen: Feedback ist Information – kein Urteil über deinen Wert.",
		},
		Mnemonic: "Feedback ist dann ein Hebel, wenn es Klarheit erzeugt – nicht wenn es deine Stabilität ersetzt.",
		SummaryHigh: "Rückmeldung stabilisiert dich: du bleibst konsequent, abrufbar, präzise.",
		SummaryLow:  "Ohne Feedback wirst du unsichtbarer/unklarer. Risiko: Unterkommunikation, weniger Korrektur, weniger Präzision.",
		SteerLine:   "Steuerung: Feedback-Frequenz festlegen (z.B. 1 Review/Woche) und aktiv einfordern.",
	},
	"STA": {
		ID:       "STA",
		Name:     "Positions- & Anerkennungsorientierung",
		What:     "Wie sehr Rolle/Position Anerkennung Leistung freisetzt.",
		Title:    "POSITIONS- & ANERKENNUNGSORIENTIERUNG",
		Intro: []string{
			"Diese Funktion entscheidet nicht, ob du Status willst –",
			"sondern ob Rolle und Position dir Zugriff geben.",
			"",
			"Rolle kann Sicherheit sein.",
			"Oder Druck.",
			"",
			"Diese Kategorie zeigt,",
			"wie stark Anerkennung, Stellung und Rollen-Klarheit",
			"deine Leistung freisetzen oder begrenzen.",
		},
		High: []string{
			"Rolle aktiviert Leistung.",
			"Wenn deine Position klar ist, steigt Anspruch und Präsenz.",
			"",
			"Typische Wirkung bei hoher Ausprägung:",
			"• Du spielst stärker „auf Niveau“, wenn Rahmen klar ist",
			"• Du übernimmst Raum, wenn du legitimiert bist",
			"• Du lieferst präsenter und konsequenter",
			"• Du reagierst sensibel auf Status-Dynamiken",
			"",
			"Wichtig:",
			"Status muss funktional bleiben – nicht emotional.",
		},
		Mid: []string{
			"Rolle hilft – aber sie ist nicht alles.",
			"Manchmal brauchst du Klarheit im System.",
			"Manchmal bleibst du intrinsisch stabil.",
			"",
			"Typisch:",
			"• Du willst Anerkennung, aber nicht um jeden Preis",
			"• Du nimmst Raum, aber manchmal zu wenig",
			"• Du schwankst zwischen Sichtbarkeit und Rückzug",
		},
		Low: []string{
			"Du bist stärker intrinsisch.",
			"Status ist kein großer Trigger.",
			"",
			"Risiko:",
			"Du bleibst zu unsichtbar.",
			"Nicht weil du klein bist –",
			"sondern weil du dir nicht genug Raum gibst, obwohl du Wirkung hättest.",
		},
		Practice: []string{
			"Rolle in 1 Satz definieren: „Ich bin verantwortlich für …“ – Klarheit erzeugt Zugriff.",
			"Wirkung sichtbar machen: Beitrag, Ergebnis, Verantwortung – kurz und sachlich.",
			"Status funktional nutzen: Orientierung und Erwartung, nicht Ego.",
		},
		Mnemonic: "Position ist dann ein Hebel, wenn sie Wirkung erhöht – nicht wenn sie dich steuert.",
		SummaryHigh: "Klare Rolle/Position erhöht Anspruch, Sicherheit und sichtbaren Abruf von Leistung.",
		SummaryLow:  "Unklare Rolle erzeugt Reibung: zu wenig Raum, Unsichtbarkeit oder geringerer Abruf von Leistung.",
		SteerLine:   "Steuerung: Rolle definieren, Sichtbarkeit gezielt gestalten (Wirkung, nicht Ego).",
	},
}

var meaningCards = map[string]MeaningCard{
	"DST": {
		Top:       "Unter Druck kannst du Leistung abrufen: Fokus, Prioritäten, Handlung. Das ist ein echter Peak-Hebel, wenn es zählt.",
		LowA:      "Bei Druck sinkt dein Zugriff spürbar: Fokus bricht, Entscheidungen werden zäher, du verlierst Tempo oder gehst in Schutzmodus. Das kostet Leistung – nicht wegen Kompetenz, sondern wegen Belastungsmechanik.",
		LowB:      "In vielen Situationen funktioniert es – aber unter bestimmten Triggern (Zeitdruck, Bewertung, Erwartung) kippt der Zugriff. Reibung entsteht nicht, weil du ‘besser werden musst’, sondern weil du Druck anders dosieren musst als dein Umfeld.",
		SteerHigh: "Druck dosieren: klare ‘High-Pressure’-Fenster + bewusste Regeneration. Nicht dauerhaft auf Anschlag.",
		SteerMid:  "Trigger kennen: Welche Druckart kippt dich? Dann Vorab-Standard setzen (1–3 Prioritäten, klare nächste Aktion).",
		SteerLow:  "Druck entkoppeln: kurze Handlungsschritte, feste Routinen, klare Grenzen. Leistung über Struktur statt Stress erzeugen.",
		ShortTop:  "Unter Druck bleibt dein Zugriff da: Fokus, Entscheidung, Handlung. Das ist ein echter Leistungsvorteil, wenn es zählt.",
		ShortLowA: "Unter Druck kippt der Zugriff schnell: Fokus bricht, Entscheidungen werden zäh, Tempo geht verloren. Genau hier entsteht Reibung.",
		ShortLowB: "Meist funktioniert es – aber bestimmte Trigger (Zeitdruck, Bewertung, Erwartung) ziehen dir den Zugriff. Reibung entsteht situativ, nicht grundsätzlich.",
	},
	"STR": {
		Top:       "Ordnung gibt dir Zugriff: klare Abläufe, Prioritäten, Zuständigkeiten. Du bleibst sauber und zuverlässig, wenn andere chaotisch werden.",
		LowA:      "Unordnung kostet dich konstant Energie: wechselnde Prioritäten, Unklarheit, Chaos. Du verlierst nicht wegen Fähigkeit – sondern weil du zu viel im Kopf tragen musst.",
		LowB:      "Du kannst Struktur – aber sie ist nicht dein Standard. Reibung entsteht, wenn Umfeld ‘System’ erwartet und du es situativ erst bauen musst. Dann geht Energie in Sortieren statt in Liefern.",
		SteerHigh: "Nicht übersteuern: Struktur als Rahmen nutzen, nicht als Käfig. Fokus auf wenige Standards, die wirklich Output sichern.",
		SteerMid:  "Minimal-Standards setzen: 3 Prioritäten, 1 Entscheidungsregel, 1 Abschluss-Review. Stabilität ohne Overhead.",
		SteerLow:  "Kompensieren statt verbiegen: externe Struktur nutzen (Templates, Checklisten, klare Zuständigkeiten). System entlastet Kopf.",
		ShortTop:  "Struktur gibt dir Zugriff: du priorisierst sauber und bleibst stabil, wenn andere in Chaos kippen.",
		ShortLowA: "Unordnung kostet dich Leistung: zu viel im Kopf, zähe Entscheidungen, unnötiger Energieverlust. Hier entsteht klare Reibung.",
		ShortLowB: "Du kannst Struktur, aber sie greift nicht automatisch. Unter Druck verlierst du Zeit durch Sortieren statt durch Liefern.",
	},
	"MAC": {
		Top:       "Du nimmst Verantwortung aktiv: du steuerst, entscheidest, gehst voran. Das ist Leadership-Power in Leistungssystemen.",
		LowA:      "Verantwortung bleibt zu oft ‘draußen’: du wartest eher auf Vorgaben, Einfluss wird verschenkt. Reibung entsteht, wenn Entscheidungen bei dir erwartet werden – du aber keinen klaren Verantwortungsrahmen hast.",
		LowB:      "Du übernimmst Verantwortung, wenn Rahmen klar ist – aber nicht automatisch. Reibung entsteht, wenn Leadership ‘implizit’ erwartet wird, ohne dass du Mandat oder Grenze hast.",
		SteerHigh: "Delegation aktiv trainieren: Verantwortung ja – aber nicht alles selbst. Ergebnisverantwortung statt Detailkontrolle.",
		SteerMid:  "Mandat klären: Was ist dein Verantwortungsrahmen? Welche Entscheidungen gehören dir? Dann handeln, bevor es ‘dringend’ wird.",
		SteerLow:  "Verantwortung strukturiert holen: klare Aufgabenpakete, klare Entscheidungspunkte. Ohne Mandat keine saubere Verantwortung.",
		ShortTop:  "Du übernimmst Verantwortung aktiv: du steuerst, entscheidest und gehst voran. Das erzeugt Wirkung und Verlässlichkeit.",
		ShortLowA: "Verantwortung landet zu oft nicht klar bei dir: Entscheidungen bleiben hängen, Einfluss wird verschenkt. Das erzeugt Reibung im System.",
		ShortLowB: "Du übernimmst Verantwortung, wenn der Rahmen klar ist. Wird Führung stillschweigend erwartet, entsteht Reibung durch Unklarheit.",
	},
	"KON": {
		Top:       "Soziale Rückkopplung stärkt dich: Austausch macht dich klarer, stabiler, abrufbarer. Du performst besser über Sparring.",
		LowA:      "Du bist sehr autonom: du brauchst wenig Anschluss, um zu liefern. Reibung entsteht, wenn du dadurch zu wenig Korrektur bekommst oder unsichtbar bleibst.",
		LowB:      "Kontakt funktioniert – aber nicht immer. Reibung entsteht, wenn zu viel Austausch deinen Fokus zerfranst oder wenn du zu spät kommunizierst und dann ‘Reparaturmodus’ brauchst.",
		SteerHigh: "Input führen: Sparring gezielt nutzen, nicht jedem Feedback die Führung geben. Standard: feste Slots, klare Fragen.",
		SteerMid:  "Kontakt dosieren: in kritischen Phasen Sparring aktivieren, sonst Fokus schützen. Rhythmus statt Bauchgefühl.",
		SteerLow:  "Kompensieren: 1 fester Feedback-Kanal + kurze Status-Updates. Du bleibst autonom – aber nicht blind.",
		ShortTop:  "Austausch macht dich klarer: du nutzt Rückkopplung als Hebel und wirst darüber stabiler und abrufbarer.",
		ShortLowA: "Du bist sehr autonom. Reibung entsteht, wenn dadurch Korrektur fehlt oder du zu unsichtbar bleibst, obwohl du Leistung bringst.",
		ShortLowB: "Kontakt hilft, aber nicht immer. Zu viel Austausch zerfasert Fokus – zu wenig Kommunikation führt später zu unnötigem Reparieren.",
	},
	"MOR": {
		Top:       "Werte geben dir Stabilität: du entscheidest klarer, wenn es zu deinen Prinzipien passt. Integrität wird zu Leistungskraft.",
		LowA:      "Weiche Grenzen kosten Energie: du grübelst länger, bist inkonsistenter, weil innere Linie nicht klar genug geführt wird. Reibung entsteht durch inneren Lärm, nicht durch fehlendes Können.",
		LowB:      "Du hast Werte – aber sie sind situativ. Reibung entsteht, wenn Umfeld klare Kante erwartet und du innerlich noch abwägst. Dann verlierst du Zeit, Fokus und Ruhe.",
		SteerHigh: "Nicht dogmatisch werden: Werte als Leitplanke nutzen, nicht als Starrheit. Klar + flexibel in Umsetzung bleiben.",
		SteerMid:  "No-Go-Liste schärfen: 3 Werte + 3 Grenzen. Entscheidungen werden schneller, weil Diskussion wegfällt.",
		SteerLow:  "Kompensieren: externe Kriterien nutzen (Regeln, Prinzipien, Entscheidungsfragen). Linie bauen, ohne dich zu ‘verändern’.",
		ShortTop:  "Deine Werte stabilisieren Entscheidungen: du hast eine klare innere Linie, die unter Druck trägt.",
		ShortLowA: "Weiche Grenzen erzeugen inneren Lärm: Grübeln, Unruhe, inkonsistente Entscheidungen. Genau das kostet Leistung.",
		ShortLowB: "Du hast Werte, aber sie greifen nicht immer automatisch. Wenn klare Kante erwartet wird, entsteht Reibung durch Abwägen.",
	},
	"IND": {
		Top:       "Autonomie setzt Leistung frei: wenn du gestalten darfst, lieferst du kreativen Output, Eigenständigkeit und Lösungen.",
		LowA:      "Zu wenig Autonomie zieht Energie: du wirst passiver oder lieferst ‘Dienst nach Vorschrift’. Reibung entsteht, wenn du in starre Vorgaben gezwungen wirst, die nicht dein Modus sind.",
		LowB:      "Du kannst Freiheit nutzen – aber sie muss geführt sein. Reibung entsteht, wenn entweder zu eng kontrolliert wird oder Ziele zu diffus sind und du dann keinen klaren Zugriff hast.",
		SteerHigh: "Ergebnis klar halten: Ziel messbar, Weg frei. Nicht in Chaos kippen – Autonomie braucht Richtung.",
		SteerMid:  "Leitplanken definieren: 2–3 Regeln, dann gestalten. Freiheit in Zeitfenster einteilen, nicht grenzenlos.",
		SteerLow:  "Kompensieren: klare Vorgaben + kleine Freiheitsfenster. Du performst über Rahmen – nutze ihn bewusst.",
		ShortTop:  "Autonomie setzt Leistung frei: Gestaltungsspielraum macht dich produktiv, lösungsorientiert und wirksam.",
		ShortLowA: "Zu wenig Autonomie zieht Energie: du wirst passiver oder lieferst unter Wert. Reibung entsteht durch zu starre Vorgaben.",
		ShortLowB: "Freiheit funktioniert, wenn sie geführt ist. Ohne klare Ziele oder bei zu enger Kontrolle entsteht Reibung durch fehlenden Zugriff.",
	},
	"AKT": {
		Top:       "Tempo ist dein Motor: du kommst ins Tun, erzeugst Momentum, ziehst Umsetzung durch. Entscheidung folgt oft aus Handlung.",
		LowA:      "Dynamik startet schwer: du bleibst zu lange im Kopf, kommst zu spät in Umsetzung. Reibung entsteht, wenn Umfeld Tempo erwartet und dein System erst Sicherheit aufbauen muss.",
		LowB:      "Du kannst schnell sein – aber nicht konstant. Reibung entsteht, wenn du zwischen Sprint und Stillstand wechselst und dadurch Rhythmus verlierst.",
		SteerHigh: "Push & Brake steuern: Tempo bewusst setzen – und bewusst stoppen, bevor es hektisch wird.",
		SteerMid:  "Rhythmus bauen: Start-Ritual + Timeboxing. Stabilität schlägt ‘Motivation’.",
		SteerLow:  "Kompensieren: kleinster Schritt sofort (5-Minuten-Start). Output über Mini-Aktionen statt ‘große Energie’.",
		ShortTop:  "Tempo ist dein Motor: du kommst ins Tun, baust Momentum auf und ziehst Umsetzung durch.",
		ShortLowA: "Der Start ist zäh: du bleibst zu lange im Kopf und kommst zu spät in Handlung. Reibung entsteht, wenn Tempo gefordert ist.",
		ShortLowB: "Du kannst Tempo, aber nicht konstant. Reibung entsteht durch Wechsel zwischen Sprint und Stillstand – Rhythmus geht verloren.",
	},
	"INF": {
		Top:       "Verstehen stabilisiert dich: du siehst Zusammenhänge, triffst bessere Entscheidungen, bleibst ruhiger – auch unter Druck.",
		LowA:      "Zu wenig Klarheit macht dich wacklig: du zögerst oder entscheidest zu intuitiv. Reibung entsteht, wenn Komplexität hoch ist und du keine Minimum-Infos hast.",
		LowB:      "Du kannst analysieren – aber situativ. Reibung entsteht, wenn du entweder zu viel Info sammelst oder zu schnell entscheidest, je nach Druck.",
		SteerHigh: "Analyse begrenzen: ‘genug Klarheit’ definieren, dann entscheiden. Sonst wird Verständnis zur Bremse.",
		SteerMid:  "2–3 Pflichtinfos pro Entscheidung. Wenn sie da sind: Go. Wenn nicht: bewusst Risiko markieren.",
		SteerLow:  "Kompensieren: Entscheidung über klare Heuristiken (Checkfragen). Minimum-Info sichern, dann handeln.",
		ShortTop:  "Verstehen gibt dir Zugriff: du erkennst Muster, triffst bessere Entscheidungen und bleibst auch unter Druck stabil.",
		ShortLowA: "Zu wenig Klarheit macht Entscheidungen wacklig: Zögern oder zu schnelle Intuition. Reibung entsteht bei hoher Komplexität.",
		ShortLowB: "Du kannst analysieren, aber situativ. Unter Druck kippst du entweder in Überanalyse oder in zu schnelle Entscheidungen.",
	},
	"COM": {
		Top:       "Vergleich schärft dich: Benchmarks pushen Standards, Intensität steigt, du gehst in Leistungsmodus, wenn es messbar wird.",
		LowA:      "Ohne Vergleich fehlt dir oft externe Reibung: Standards bleiben weicher, Intensität steigt weniger. Reibung entsteht, wenn Umfeld Wettbewerb nutzt und du dadurch ‘unterfordert’ wirkst.",
		LowB:      "Vergleich kann pushen – aber nicht immer. Reibung entsteht, wenn Benchmarks mal antreiben, mal ablenken, weil der Maßstab nicht sauber geführt ist.",
		SteerHigh: "Vergleich kontrollieren: Benchmarks als Tool nutzen, nicht als emotionale Steuerung. Fokus bleibt bei Output.",
		SteerMid:  "Phasenweise messen: Sprint-Phasen mit Benchmarks, dazwischen Stabilitätsmodus ohne Dauervergleich.",
		SteerLow:  "Kompensieren: eigene Standards setzen (KPI / Zielkriterien). Externe Reibung bewusst hinzufügen – dosiert.",
		ShortTop:  "Vergleich schärft dich: messbare Standards pushen Leistung, Fokus und Intensität steigen.",
		ShortLowA: "Ohne Vergleich fehlt oft Reibung von außen: Standards bleiben weicher, Intensität steigt weniger. Das kann Leistung kosten.",
		ShortLowB: "Vergleich kann pushen oder ablenken. Wenn Maßstäbe nicht sauber geführt sind, entsteht Reibung durch inkonsistente Orientierung.",
	},
	"AUF": {
		Top:       "Sichtbarkeit & Feedback können dich stabilisieren: Resonanz gibt Richtung und verstärkt Abrufbarkeit – wenn du sie führst.",
		LowA:      "Du bist unabhängig: du brauchst wenig Feedback. Reibung entsteht eher andersrum: du wirst unsichtbar oder unterkommunizierst, obwohl du Leistung bringst – Wirkung wird nicht abgerufen.",
		LowB:      "Du kannst Feedback nutzen, willst aber nicht abhängig sein. Reibung entsteht, wenn Umfeld dauernd Rückmeldung will oder Sichtbarkeit erwartet – und du das als Energieverlust erlebst.",
		SteerHigh: "Feedback führen: klare Kanäle, klare Kriterien. Resonanz nutzen, ohne von Bewertung abhängig zu werden.",
		SteerMid:  "Feedback zuschalten: nur in kritischen Phasen aktiv einholen, sonst intern steuern und Fokus schützen.",
		SteerLow:  "Kompensieren: Sichtbarkeit funktional machen (kurzes Ergebnis-Log). Kein ‘Feedback suchen’, sondern Wirkung dokumentieren.",
		ShortTop:  "Feedback kann dich stabilisieren: Resonanz gibt Richtung und erhöht Abrufbarkeit – wenn du sie bewusst führst.",
		ShortLowA: "Du brauchst wenig Feedback. Reibung entsteht, wenn du dadurch zu unsichtbar wirst oder Wirkung nicht abgerufen wird.",
		ShortLowB: "Du nutzt Feedback, willst aber nicht abhängig sein. Reibung entsteht, wenn Umfeld Dauer-Resonanz fordert oder Sichtbarkeit erwartet.",
	},
	"STA": {
		Top:       "Rolle/Position geben dir Zugriff: klare Stellung erhöht Präsenz, Anspruch und sichtbare Leistung – wenn du es funktional nutzt.",
		LowA:      "Status ist kein Trigger: du lieferst auch ohne Bühne. Reibung entsteht, wenn du dadurch zu wenig Raum nimmst und deine Wirkung unter Wert bleibt.",
		LowB:      "Rolle hilft, aber ist nicht dein Motor. Reibung entsteht, wenn Umfeld Statusspiele spielt oder klare Positionierung verlangt und du dich dadurch eingeengt fühlst.",
		SteerHigh: "Status funktional halten: Rolle = Verantwortung, nicht Ego. Präsenz ja – aber ohne Dominanz-Spielchen.",
		SteerMid:  "Rolle bewusst klären: ‘Wofür stehe ich hier?’ Dann gezielt Raum nehmen, ohne dich zu verbiegen.",
		SteerLow:  "Kompensieren: Wirkung sichtbar machen (Beitrag/Ergebnis). Raum nehmen als Pflicht zur Verantwortung, nicht als Selbstdarstellung.",
		ShortTop:  "Rolle und Position geben dir Zugriff: klare Stellung erhöht Präsenz, Anspruch und sichtbare Leistung.",
		ShortLowA: "Status triggert dich wenig. Reibung entsteht, wenn du dadurch zu wenig Raum nimmst und Wirkung unter Wert bleibt.",
		ShortLowB: "Rolle hilft, aber ist nicht dein Motor. Reibung entsteht bei Statusspielen oder wenn klare Positionierung dich einengt.",
	},
}

var addendumHigh = map[string]string{
	"DST": "Wenn es zählt, schaltet dein System auf Klarheit und Handlung – statt auf Zweifel.",
	"STR": "Du hältst Qualität hoch, weil du Entscheidungen über Struktur führst – nicht über Stimmung.",
	"MAC": "Du bringst Dinge ins Ziel, weil du Verantwortung führst, statt auf Richtung zu warten.",
	"KON": "Du wirst stärker durch gezieltes Sparring – Kontakt dient bei dir der Klarheit.",
	"MOR": "Deine innere Linie spart Energie – du wirst klarer, weil du Grenzen kennst.",
	"IND": "Du lieferst am besten, wenn du Spielraum hast, Outcome aber glasklar bleibt.",
	"AKT": "Du erzeugst Output über Momentum – Umsetzung bringt dir Zugriff.",
	"INF": "Du triffst bessere Entscheidungen, weil du Muster erkennst und Zusammenhänge sauber führst.",
	"COM": "Messbarkeit macht dich scharf – solange du Vergleich als Werkzeug steuerst.",
	"AUF": "Feedback wirkt als Verstärker, wenn du Frequenz und Zweck selbst definierst.",
	"STA": "Wenn die Rolle klar ist, nutzt du Präsenz als Leistungstreiber – nicht als Ego-Spiel.",
}

var addendumMid = map[string]string{
	"DST": "Leistung unter Druck ist möglich – sie wird verlässlicher, wenn Prioritäten und Reset klar sind.",
	"STR": "Dieser Hebel gibt dir Orientierung – er wird stabiler, je klarer du Standards wirklich lebst.",
	"MAC": "Ownership ist da – sie wird stärker, wenn Scope und Entscheidungsspielraum sauber gesetzt sind.",
	"KON": "Austausch hilft – am besten, wenn du ihn dosierst und mit klaren Fragen führst.",
	"MOR": "Werte stabilisieren dich – je klarer deine No-Gos, desto weniger innerer Lärm.",
	"IND": "Freiheit wirkt – sie trägt am meisten, wenn Ziel und Definition von „fertig“ klar sind.",
	"AKT": "Momentum entsteht – es wird konstanter, wenn du Start und Rhythmus bewusst setzt.",
	"INF": "Klarheit kommt über Verständnis – sie bleibt stabil, wenn Analyse in Entscheidung mündet.",
	"COM": "Benchmarks können pushen – sauber wird es, wenn du Vergleich phasenweise steuerst.",
	"AUF": "Feedback kann stärken – wenn du Frequenz, Zweck und Grenzen klar definierst.",
	"STA": "Du profitierst von Rollen-Klarheit – die Wirkung hängt spürbar von Kontext und Rahmen ab.",
}

var profileTypes = map[string]ProfileType{
	"A": {
		Tag:     "A",
		Title:   "Stabilitätsmodus",
		Label:   "Fundament-Performer",
		Hint:    "Du lieferst, wenn Rahmen & Standards klar sind.",
		Explain: "Ruhig, zuverlässig, präzise. Führung: klare Rahmen, keine künstliche Hektik.",
		Archetype:   "Der Antreiber",
		Core:        "Du bist handlungsorientiert, entscheidungsstark und gehst voran, wenn andere zögern.",
		Strengths: []string{
			"Hohe Umsetzungsgeschwindigkeit",
			"Klarer Fokus auf Ergebnisse",
			"Entscheidungsfreude unter Unsicherheit",
		},
		Risks: []string{
			"Ungeduld mit langsameren Menschen",
			"Tendenz zu Übersteuerung",
			"Gefahr, Warnsignale zu ignorieren",
		},
		Development: "Lerne, bewusst Pausen einzubauen und andere stärker mitzunehmen.",
	},
	"B": {
		Tag:     "B",
		Title:   "Druckmodus",
		Label:   "Peak-Performer",
		Hint:    "Je höher der Druck, desto besser – wenn du ihn steuerst.",
		Explain: "Hochfokussiert in kritischen Momenten. Führung: Druck dosieren + klare Regeln + Regeneration.",
		Archetype:   "Der Belastbare",
		Core:        "Du bleibst auch unter hohem Druck leistungsfähig und mental stabil.",
		Strengths: []string{
			"Hohe Stressresistenz",
			"Emotionale Kontrolle",
			"Zuverlässigkeit in kritischen Phasen",
		},
		Risks: []string{
			"Innere Anspannung wird nach außen nicht sichtbar",
			"Gefahr der schleichenden Erschöpfung",
		},
		Development: "Baue aktive Regenerationsroutinen auf, bevor dein System sie erzwingt.",
	},
	"C": {
		Tag:     "C",
		Title:   "Gestaltungsmodus",
		Label:   "Lösungs- & Konzeptmodus",
		Hint:    "Freiheit erzeugt Leistung. Ziele ja – Detailsteuerung nein.",
		Explain: "Kreativ, konzeptionell, lösungsorientiert. Führung: Ziel klar, Weg offen. Ergebnis zählt, nicht die Methode.",
		Archetype:   "Der Analytiker",
		Core:        "Du willst verstehen, bevor du handelst – und triffst fundierte Entscheidungen.",
		Strengths: []string{
			"Hohe Informationsverarbeitung",
			"Logische Klarheit",
			"Strategisches Denken",
		},
		Risks: []string{
			"Überanalyse",
			"Zögern in dynamischen Situationen",
		},
		Development: "Trainiere klare Entscheidungszeitfenster.",
	},
	"D": {
		Tag:     "D",
		Title:   "Vergleichsmodus",
		Label:   "Ambitions-Performer",
		Hint:    "Leistung entsteht im Wettbewerb, Standards und Feedback.",
		Explain: "Leistungsgetrieben, benchmark-orientiert, ambitioniert. Führung: Maßstäbe sauber setzen, Feedback sachlich, Vergleich kontrollieren.",
		Archetype:   "Der Stabilisator",
		Core:        "Du gibst Sicherheit, Struktur und Verlässlichkeit – auch für andere.",
		Strengths: []string{
			"Konstanz",
			"Verantwortungsbewusstsein",
			"Teamorientierung",
		},
		Risks: []string{
			"Anpassung auf eigene Kosten",
			"Konfliktvermeidung",
		},
		Development: "Lerne, Grenzen klarer zu setzen.",
	},
	"E": {
		Tag:     "E",
		Title:   "Kontrollmodus",
		Label:   "Steuerungs-Performer",
		Hint:    "Du performst maximal, wenn Verantwortung klar bei dir liegt.",
		Explain: "Übernimmt Verantwortung, denkt steuernd, behält Überblick. Führung: Verantwortung abgrenzen, Delegation trainieren.",
		Archetype:   "Der Stratege",
		Core:        "Du denkst voraus, erkennst Muster und steuerst Systeme.",
		Strengths: []string{
			"Weitblick",
			"Systemdenken",
			"Planungsstärke",
		},
		Risks: []string{
			"Distanz zum operativen Alltag",
			"Zu wenig emotionale Anbindung",
		},
		Development: "Verbinde Strategie stärker mit konkretem Handeln.",
	},
}
